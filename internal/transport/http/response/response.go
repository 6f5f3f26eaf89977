package response

import "go-micropost/internal/domain"

type Resp struct {
	Code   int                 `json:"code"`
	Msg    string              `json:"msg"`
	Data   interface{}         `json:"data"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

// New 构造函数（保证 data 不为 null）
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error 失败响应（可传自定义 msg 覆盖默认）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// Invalid 校验失败：带出字段级错误，供表单回显
func Invalid(errs domain.ValidationErrors) Resp {
	r := New(CodeUnprocessable, CodeMsgMap[CodeUnprocessable], struct{}{})
	r.Errors = errs
	return r
}
