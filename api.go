package menuscript

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIErrorMarker is substituted for the response payload whenever a
// remote call fails for any reason. Scripts can bind on seeing it; the
// underlying cause goes to the log only.
const APIErrorMarker = "[API ERROR]"

// maxResponseBytes caps how much of a response body is read into a
// control attribute
const maxResponseBytes = 1 << 20

// HTTPDoer is the transport behind API calls. Production wires an
// *http.Client with the configured timeouts; tests substitute a stub.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ensureURLScheme prepends a scheme when the script omitted one.
// Loopback hosts get http, everything else https.
func ensureURLScheme(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	if strings.HasPrefix(raw, "localhost") || strings.HasPrefix(raw, "127.") {
		return "http://" + raw
	}
	return "https://" + raw
}

// validateAPIURL normalizes and validates a base URL at api-set time
func validateAPIURL(raw string) (string, error) {
	normalized := ensureURLScheme(raw)
	u, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("%q is not a valid URL", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%q is not a valid http(s) URL", raw)
	}
	return normalized, nil
}

// joinURL appends a request path to a base URL without doubling slashes
func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

// buildAPIRequest assembles the outgoing request for a fired API
// binding. The body template has already been substituted.
func buildAPIRequest(cfg *APIConfig, method, path, body string) (*http.Request, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, joinURL(cfg.BaseURL, path), reader)
	if err != nil {
		return nil, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case cfg.Key != "":
		// A key already carrying an auth scheme is sent verbatim
		if strings.HasPrefix(cfg.Key, "Bearer ") || strings.HasPrefix(cfg.Key, "Basic ") {
			req.Header.Set("Authorization", cfg.Key)
		} else {
			req.Header.Set("Authorization", "Bearer "+cfg.Key)
		}
	case cfg.Username != "":
		req.SetBasicAuth(cfg.Username, cfg.Password)
	}
	return req, nil
}

// fireAPICall runs a bound API call. The template is substituted and the
// config resolved on the calling goroutine; the network round trip
// happens on its own goroutine and the result is applied later via the
// task queue, so firing never blocks the UI. Responses land in
// completion order: when two calls target the same control, the last
// response to arrive wins regardless of firing order.
func (in *Interpreter) fireAPICall(call *APICall, line int) {
	cfg, ok := in.session.APIByName(call.API)
	if !ok {
		err := apiErrorf("", "api config %q not found", call.API)
		err.Line = line
		in.logger.ScriptErrorLog(err)
		in.deliverAPIResult(call.Target, APIErrorMarker)
		return
	}

	body := in.substituteTemplate(call.BodyTemplate)
	req, err := buildAPIRequest(cfg, call.Method, call.Path, body)
	if err != nil {
		in.logger.ErrorCat(CatAPI, "building %s %s request: %v", call.Method, call.Path, err)
		in.deliverAPIResult(call.Target, APIErrorMarker)
		return
	}

	in.logger.DebugCat(CatAPI, "%s %s", req.Method, req.URL)
	go func() {
		result := in.performRequest(req)
		in.enqueue(func() {
			in.deliverAPIResult(call.Target, result)
		})
	}()
}

// performRequest does the blocking round trip and reduces the outcome
// to the string routed into the target attribute
func (in *Interpreter) performRequest(req *http.Request) string {
	resp, err := in.http.Do(req)
	if err != nil {
		in.logger.ErrorCat(CatAPI, "%s %s failed: %v", req.Method, req.URL, err)
		return APIErrorMarker
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		in.logger.ErrorCat(CatAPI, "reading %s response: %v", req.URL, err)
		return APIErrorMarker
	}
	if resp.StatusCode >= 400 {
		in.logger.ErrorCat(CatAPI, "%s %s returned %s", req.Method, req.URL, resp.Status)
		return APIErrorMarker
	}
	return string(payload)
}

// deliverAPIResult writes a completed response into the bound target, or
// logs it when the binding had no -> clause
func (in *Interpreter) deliverAPIResult(target *AttrRef, result string) {
	if target == nil {
		in.logger.NoticeCat(CatAPI, "response: %s", truncateForLog(result, 200))
		return
	}
	if err := in.setControlAttr(target, result); err != nil {
		in.logger.ErrorCat(CatAPI, "routing response to %s.%s: %v", target.Control, target.Attr, err)
	}
}

// fireAPITest probes an API base URL with a GET and reports a localized
// summary instead of the raw payload
func (in *Interpreter) fireAPITest(name string, target *AttrRef, line int) {
	cfg, ok := in.session.APIByName(name)
	if !ok {
		err := apiErrorf("api-test", "api config %q not found", name)
		err.Line = line
		in.logger.ScriptErrorLog(err)
		return
	}
	req, err := http.NewRequest(http.MethodGet, cfg.BaseURL, nil)
	if err != nil {
		in.logger.ErrorCat(CatAPI, "api-test %s: %v", name, err)
		return
	}
	lang := in.session.Language()
	go func() {
		result := in.performRequest(req)
		summary := getText(lang, "connection_success")
		if result == APIErrorMarker {
			summary = getText(lang, "connection_failed")
		}
		in.enqueue(func() {
			in.deliverAPIResult(target, summary)
		})
	}()
}

func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
