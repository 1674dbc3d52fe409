package service

import "testing"

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
	}
	for _, tt := range tests {
		if got := NormalizePage(tt.in); got != tt.want {
			t.Fatalf("NormalizePage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPaginateSizes(t *testing.T) {
	items := seq(23)

	tests := []struct {
		page      int
		wantLen   int
		wantFirst int
	}{
		{1, 10, 1},
		{2, 10, 11},
		{3, 3, 21},
		{4, 0, 0},
		{0, 10, 1},
	}

	for _, tt := range tests {
		got := Paginate(items, tt.page)
		if len(got) != tt.wantLen {
			t.Fatalf("Paginate(page=%d) len = %d, want %d", tt.page, len(got), tt.wantLen)
		}
		if tt.wantLen > 0 && got[0] != tt.wantFirst {
			t.Fatalf("Paginate(page=%d) first = %d, want %d", tt.page, got[0], tt.wantFirst)
		}
	}
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	for total := 0; total <= 35; total++ {
		items := seq(total)
		for page := 1; page <= 5; page++ {
			got := len(Paginate(items, page))
			want := min(QuestionsPerPage, max(0, total-(page-1)*QuestionsPerPage))
			if got != want {
				t.Fatalf("total=%d page=%d: len = %d, want %d", total, page, got, want)
			}
		}
	}
}

func TestPaginateEmptyIsNonNil(t *testing.T) {
	if got := Paginate([]int(nil), 1); got == nil {
		t.Fatalf("expected non-nil empty page")
	}
}

func TestPaginateHugePage(t *testing.T) {
	items := seq(12)

	for _, page := range []int{1000000000000000000, int(^uint(0) >> 1)} {
		if got := Paginate(items, page); got == nil || len(got) != 0 {
			t.Fatalf("Paginate(page=%d) = %v, want empty page", page, got)
		}
	}
}
