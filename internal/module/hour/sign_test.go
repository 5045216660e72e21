package hour

import (
	"net/url"
	"testing"

	"pomelox-server/internal/global/response"
	"pomelox-server/test"
)

func TestSignRecordRejectsUnknownType(t *testing.T) {
	resp := test.DoFormRequest(t, SignRecord, url.Values{
		"userId": {"1"},
		"type":   {"9"},
	})
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("type 必须为 1（签到）或 2（签退）"), resp)
}

func TestSignRecordRejectsMissingType(t *testing.T) {
	resp := test.DoFormRequest(t, SignRecord, url.Values{
		"userId": {"1"},
	})
	if resp.Code != response.ErrInvalidRequest.Code {
		t.Fatalf("期望参数错误码 %d，实际 %d", response.ErrInvalidRequest.Code, resp.Code)
	}
}
