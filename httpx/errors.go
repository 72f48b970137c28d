// Package httpx pairs error logging with the HTTP response it implies,
// so handlers report failures through one call. Codes are dotted paths
// ("db.insert_record") naming the operation that failed.
package httpx

import (
	"fmt"
	"net/http"

	"github.com/hidrodema/obra-forms/log"
)

// LogInternalError logs err under its code and answers 500. The error
// detail stays in the log, never in the response body.
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// LogNotFound logs the missing id at debug level and answers 404.
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	w.WriteHeader(http.StatusNotFound)
}

// LogStatus logs the code at the given level and answers with the
// default text of the status.
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// LogStatusMsg logs code and formatted message at the given level and
// sends the message as the response body.
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	http.Error(w, errMsg, status)
}
