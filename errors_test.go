package websearch

import "testing"

func TestErrorRendering(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&InvalidInputError{Message: "bad"}, "invalid input: bad"},
		{&HTTPError{StatusCode: 404, Message: "not found"}, "HTTP error 404: not found"},
		{&HTTPError{Message: "connection reset"}, "HTTP error: connection reset"},
		{&TimeoutError{TimeoutMS: 5000}, "request timed out after 5000ms"},
		{&ParseError{Message: "bad json"}, "failed to parse response: bad json"},
		{&ProviderError{Message: "whole envelope"}, "whole envelope"},
		{&OtherError{Message: "misc"}, "misc"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestHTTPErrorValueCopyIsClone(t *testing.T) {
	orig := HTTPError{StatusCode: 500, Message: "boom", ResponseBody: "body"}
	cp := orig
	cp.StatusCode = 401
	if orig.StatusCode != 500 {
		t.Fatal("copy mutated the original")
	}
	// Classification works on the copied value alone.
	if hint := troubleshoot("test", &cp); hint == troubleshoot("test", &orig) {
		t.Fatal("expected different hints for 401 vs 500")
	}
}
