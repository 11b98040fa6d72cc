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

package barsheet

import "errors"

// User-facing messages.  The form is used by Chinese-speaking operators.
const (
	msgEncoderMissing = "条形码库未加载，请刷新页面重试！"
	msgNoCompletePair = "请至少输入一组完整的Chassis No和Engine No！"
	msgEncoding       = "生成条形码时出错: "
	msgBatch          = "生成条形码时出错，请检查输入。"
	msgNotGenerated   = "请先生成条形码！"

	indicatorPrefix = "错误: "
)

// UserMessage returns the message shown to the operator for err.
// Errors not produced by this module are shown verbatim.
func UserMessage(err error) string {
	var encErr *EncodingError
	var batchErr *BatchError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEncoderMissing):
		return msgEncoderMissing
	case errors.Is(err, ErrNoCompletePair):
		return msgNoCompletePair
	case errors.Is(err, ErrNotGenerated):
		return msgNotGenerated
	case errors.As(err, &batchErr):
		return msgBatch
	case errors.As(err, &encErr):
		return msgEncoding + causeMessage(encErr)
	default:
		return err.Error()
	}
}

// causeMessage returns the message of the encoder error behind err.
func causeMessage(err error) string {
	var encErr *EncodingError
	if errors.As(err, &encErr) && encErr.Err != nil {
		return encErr.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
