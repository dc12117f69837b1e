package parsers

import (
	"regexp"
	"strings"
)

// logLineTokenRegexp matches, left to right, a double-quoted run, a bracketed run,
// or a run of non-whitespace. Exactly one capture group is non-empty per match.
var logLineTokenRegexp = regexp.MustCompile(`"(.*?)"|\[(.*?)\]|(\S+)`)

// Tokenize splits one raw access-log line into its fields. Quotes and brackets are
// stripped; a field may be empty (e.g. `""`). Tokenize never fails: callers must
// bounds-check the result.
//
// For the ui_short nginx format
//
//	$remote_addr $remote_user $http_x_real_ip [$time_local] "$request" $status
//	$body_bytes_sent "$http_referer" "$http_user_agent" "$http_x_forwarded_for"
//	"$http_X_REQUEST_ID" "$http_X_RB_USER" $request_time
//
// the request line lands at index 4 and the request time at the last index.
func Tokenize(line string) []string {
	matches := logLineTokenRegexp.FindAllStringSubmatch(line, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.Join(m[1:], ""))
	}
	return tokens
}
