package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/history"
	"github.com/joestump/cryptolab/internal/metrics"
	"github.com/joestump/cryptolab/internal/session"
	"github.com/joestump/cryptolab/internal/store"
)

// operations is shared by every handler that runs an algorithm: it decodes
// and validates request bodies, times the call, and records the outcome.
type operations struct {
	log      *zap.Logger
	sessions *scs.SessionManager
	recorder history.Recorder
	rng      *rand.Rand
	validate *validator.Validate
}

func newOperations(deps Deps) *operations {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &operations{
		log:      deps.Log,
		sessions: deps.Sessions,
		recorder: deps.Recorder,
		rng:      deps.Rand,
		validate: v,
	}
}

// decode reads a JSON body into dst and validates it. On failure it writes a
// 400 and returns false.
func (o *operations) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return false
	}
	if err := o.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err), "BAD_REQUEST")
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return fe.Field() + " is required"
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// run executes fn and records it as one operation of the current visitor.
func (o *operations) run(r *http.Request, algorithm, action string, inputLen int, fn func() (string, error)) (string, error) {
	start := time.Now()
	out, err := fn()
	elapsed := time.Since(start)

	op := store.Operation{
		VisitorID:  session.VisitorID(r.Context(), o.sessions),
		Algorithm:  algorithm,
		Action:     action,
		Status:     store.StatusOK,
		InputLen:   inputLen,
		OutputLen:  len(out),
		DurationUS: elapsed.Microseconds(),
	}
	if err != nil {
		op.Status = store.StatusError
		op.Error = err.Error()
		op.OutputLen = 0
	}

	metrics.OperationsTotal.WithLabelValues(algorithm, action, op.Status).Inc()
	metrics.OperationDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	o.recorder.Record(op)
	return out, err
}
