package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestStoreError(t *testing.T) {
	if StoreError("op", nil) != nil {
		t.Fatal("StoreError(nil) should be nil")
	}

	cause := errors.New("connection refused")
	err := StoreError("list routines", cause)
	if !errors.Is(err, ErrStoreUnavailable) || !errors.Is(err, cause) {
		t.Errorf("StoreError() = %v, want both ErrStoreUnavailable and cause", err)
	}
}

func TestNotFoundSentinels(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrRoutineNotFound, ErrGoalNotFound, ErrWishNotFound} {
		if !errors.Is(err, ErrReferenceNotFound) {
			t.Errorf("%v does not wrap ErrReferenceNotFound", err)
		}
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 100},
		{"abc", 100},
		{"-3", 100},
		{"0", 100},
		{"25", 25},
		{"9999", 500},
	}
	for _, tt := range tests {
		if got := ParseLimit(tt.in, 100, 500); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMustParseUint(t *testing.T) {
	if MustParseUint("42") != 42 || MustParseUint("x") != 0 || MustParseUint("-1") != 0 {
		t.Error("MustParseUint returned unexpected values")
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{InvalidRange("hourly"), http.StatusBadRequest},
		{ErrGoalNotFound, http.StatusNotFound},
		{StoreError("find goal", errors.New("timeout")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, tt.err)
		if w.Code != tt.want {
			t.Errorf("RespondError(%v) = %d, want %d", tt.err, w.Code, tt.want)
		}
	}
}
