package common

import (
	"encoding/json"
	"errors"
	"io"
)

// DecodeJSON 使用統一設定解析 JSON，僅接受單一 JSON 值
func DecodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected extra JSON data")
	}
	return nil
}
