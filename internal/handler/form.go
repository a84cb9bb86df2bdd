package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strings"

	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
)

// 添付の上限
const maxUploadMemory = 10 << 20

// readFieldsはフォーム（urlencoded / multipart）かJSON本文を Fields にする。
// 同じ名前が複数あれば最後の値。ファイルは Upload
func readFields(c echo.Context) (usecase.Fields, error) {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		fields := usecase.Fields{}
		if req.Body == nil {
			return fields, nil
		}
		if err := json.NewDecoder(req.Body).Decode(&fields); err != nil && err != io.EOF {
			return nil, err
		}
		return fields, nil
	}

	fields := usecase.Fields{}
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		if err := req.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, err
		}
		for k, files := range req.MultipartForm.File {
			uploads := readUploads(files)
			if len(uploads) == 1 {
				fields[k] = uploads[0]
			} else {
				fields[k] = uploads
			}
		}
	}

	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	for k, vs := range params {
		if len(vs) == 0 {
			continue
		}
		fields[k] = vs[len(vs)-1]
	}
	return fields, nil
}

// readUploadsはファイルのメタ情報だけ持つ。本文は読まない
func readUploads(files []*multipart.FileHeader) []usecase.Upload {
	out := make([]usecase.Upload, 0, len(files))
	for _, fh := range files {
		out = append(out, usecase.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
		})
	}
	return out
}

// dropEmptyは部分更新フォーム用。空欄は「変更なし」
func dropEmpty(f usecase.Fields) usecase.Fields {
	out := make(usecase.Fields, len(f))
	for k, v := range f {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// bindErrorはフォームが読めなかったときのState
func bindError() usecase.State {
	return usecase.State{
		Success: false,
		Errors:  validator.General("invalid body"),
	}
}
