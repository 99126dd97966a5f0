package webp

import (
	"errors"
	"testing"
)

func TestWrapTaxNilPassthrough(t *testing.T) {
	if wrapTax(TaxContainer, nil) != nil {
		t.Fatal("wrapTax(nil) should return nil")
	}
}

func TestWrapTaxTagsAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	wrapped := wrapTax(TaxVP8Bitstream, cause)

	var de *DecodeError
	if !errors.As(wrapped, &de) {
		t.Fatalf("expected a *DecodeError, got %T", wrapped)
	}
	if de.Tag != TaxVP8Bitstream {
		t.Fatalf("Tag = %v, want %v", de.Tag, TaxVP8Bitstream)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("wrapped error should unwrap to the original cause")
	}
}

func TestDecodeErrorMessageIncludesTag(t *testing.T) {
	err := wrapTax(TaxAlpha, errors.New("bad filter"))
	want := "Alpha: bad filter"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
