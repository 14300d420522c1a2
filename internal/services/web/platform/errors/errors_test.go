package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unknown", err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "missing file", err: fmt.Errorf("open: %w", fs.ErrNotExist), want: http.StatusNotFound},
		{name: "wrapped typed", err: fmt.Errorf("render: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
	err := fmt.Errorf("wrap: %w", Error{Kind: KindUnavailable, Key: "  error.unavailable.message ", Message: "down"})
	if got := LocalizationKey(err); got != "error.unavailable.message" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "error.unavailable.message")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	if Wrap(KindUnavailable, "k", nil) != nil {
		t.Fatal("Wrap(nil) should return nil")
	}
	cause := errors.New("disk gone")
	err := Wrap(KindUnavailable, "error.unavailable.message", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if got := HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusServiceUnavailable)
	}
	if got := err.Error(); got != "disk gone" {
		t.Fatalf("Error() = %q, want %q", got, "disk gone")
	}
}
