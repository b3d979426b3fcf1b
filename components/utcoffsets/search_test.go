package utcoffsets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/utcoffset"
)

func TestSearch_PrefixBeforeContains(t *testing.T) {
	opts := NewOptions()

	got := Search(utcoffset.All(), ":30", 10, opts)
	want := []utcoffset.Offset{
		utcoffset.UTCMinus0930,
		utcoffset.UTCMinus0330,
		utcoffset.UTCPlus0330,
		utcoffset.UTCPlus0430,
		utcoffset.UTCPlus0530,
		utcoffset.UTCPlus0630,
		utcoffset.UTCPlus0930,
		utcoffset.UTCPlus1030,
		utcoffset.UTCPlus1130,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}

	got = Search(utcoffset.All(), "utc+1", 3, opts)
	want = []utcoffset.Offset{utcoffset.UTCPlus1000, utcoffset.UTCPlus1030, utcoffset.UTCPlus1100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_CompactForm(t *testing.T) {
	got := Search(utcoffset.All(), "+0545", 10, NewOptions())
	if diff := cmp.Diff([]utcoffset.Offset{utcoffset.UTCPlus0545}, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := Search([]utcoffset.Offset{utcoffset.UTC, utcoffset.UTCPlus0100}, "UtC+00", 10, NewOptions())
	if diff := cmp.Diff([]utcoffset.Offset{utcoffset.UTC}, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_LimitApplied(t *testing.T) {
	opts := NewOptions(WithDefaultLimit(2), WithMaxLimit(3))

	if got := Search(utcoffset.All(), "", 0, opts); len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got := Search(utcoffset.All(), "", 10, opts); len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
}

func TestNewOptions_AppliesDefaults(t *testing.T) {
	opts := NewOptions(WithRoutePath(""), WithDefaultLimit(-1), WithMaxLimit(0), WithEmptySearchMode(""))
	want := DefaultOptions()
	if opts.RoutePath != want.RoutePath || opts.DefaultLimit != want.DefaultLimit ||
		opts.MaxLimit != want.MaxLimit || opts.EmptySearchMode != want.EmptySearchMode {
		t.Fatalf("expected defaults, got %+v", opts)
	}
}
