// seehuhn.de/go/barsheet - barcode label sheets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"bytes"
	"html/template"
	"net/http"

	"seehuhn.de/go/barsheet"
)

type formSlot struct {
	Slot         int
	ChassisName  string
	EngineName   string
	ChassisValue string
	EngineValue  string
}

type formItem struct {
	Slot      int
	OK        bool
	Label     []string
	Indicator string
}

type formData struct {
	Slots  []formSlot
	Items  []formItem
	Alerts []string
	Ready  bool
}

// render writes the form page.  The caller must hold s.mu.
func (s *Server) render(w http.ResponseWriter, status int, alerts []string) {
	data := formData{
		Alerts: alerts,
		Ready:  s.session.Ready(),
	}
	for slot := 1; slot <= barsheet.Slots; slot++ {
		chassis := barsheet.ChassisField(slot)
		engine := barsheet.EngineField(slot)
		data.Slots = append(data.Slots, formSlot{
			Slot:         slot,
			ChassisName:  chassis,
			EngineName:   engine,
			ChassisValue: s.fields[chassis],
			EngineValue:  s.fields[engine],
		})
	}
	if s.session != nil {
		for i := range s.session.Results {
			res := &s.session.Results[i]
			data.Items = append(data.Items, formItem{
				Slot:      res.Entry.Slot,
				OK:        res.OK(),
				Label:     res.Label(),
				Indicator: res.Indicator(),
			})
		}
	}

	buf := &bytes.Buffer{}
	if err := formTemplate.Execute(buf, data); err != nil {
		s.log.Error().Err(err).Msg("rendering form")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>HSA Barcodes</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #2c3e50; }
.alert { padding: .6rem 1rem; margin-bottom: .5rem; background: #fdecea; border: 1px solid #f5c2c0; }
.item { text-align: center; margin: 30px 0; }
.item .label { font-weight: bold; font-size: 1.4rem; }
.item .error { color: red; }
</style>
</head>
<body>
{{range .Alerts}}<div class="alert">{{.}}</div>
{{end}}
<form method="post" action="/generate">
{{range .Slots}}<fieldset>
<legend>{{.Slot}}</legend>
<label>Chassis No <input type="text" name="{{.ChassisName}}" id="{{.ChassisName}}" value="{{.ChassisValue}}"></label>
<label>Engine No <input type="text" name="{{.EngineName}}" id="{{.EngineName}}" value="{{.EngineValue}}"></label>
</fieldset>
{{end}}<button type="submit" id="generateBtn">生成条形码</button>
</form>
<div id="barcodes">
{{range .Items}}<div class="item">
{{if .OK}}<img src="/barcode/{{.Slot}}.png" alt="barcode {{.Slot}}">
{{range .Label}}<div class="label">{{.}}</div>
{{end}}{{else}}<div class="error">{{.Indicator}}</div>
{{end}}</div>
{{end}}</div>
<form method="get" action="/download"><button type="submit" id="downloadPNG"{{if not .Ready}} disabled{{end}}>下载PNG</button></form>
<form method="get" action="/download.pdf"><button type="submit" id="downloadPDF"{{if not .Ready}} disabled{{end}}>下载PDF</button></form>
<form method="post" action="/print"><button type="submit" id="printBtn"{{if not .Ready}} disabled{{end}}>打印</button></form>
</body>
</html>
`))
