package util

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat 同时接受 JSON 数字与数字字符串，空串、null 与非数字字符串视为 0
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		// 非数字字符串按 0 处理，与旧客户端的宽松提交保持一致
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = 0
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexUint 同时接受 JSON 数字与数字字符串
type FlexUint uint

func (u *FlexUint) UnmarshalJSON(b []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	if f < 0 {
		f = 0
	}
	*u = FlexUint(f)
	return nil
}

// FlexString 同时接受 JSON 字符串与数字（学号可能以数字形式提交）
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(string(b))
	return nil
}
