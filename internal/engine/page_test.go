package engine

import (
	"fmt"
	"testing"

	"github.com/MrJJimenez/jobagg/internal/models"
)

func TestPageSlice(t *testing.T) {
	jobs := make([]models.Job, 7)
	for i := range jobs {
		jobs[i] = models.Job{Title: fmt.Sprintf("job-%d", i)}
	}

	cases := []struct {
		page, pageSize int
		wantLen        int
		wantFirst      string
	}{
		{1, 3, 3, "job-0"},
		{2, 3, 3, "job-3"},
		{3, 3, 1, "job-6"},
		{4, 3, 0, ""},
		{1, 50, 7, "job-0"},
	}

	for _, tc := range cases {
		got := PageSlice(jobs, tc.page, tc.pageSize)
		if len(got) != tc.wantLen {
			t.Fatalf("PageSlice(page=%d, size=%d) returned %d jobs, want %d", tc.page, tc.pageSize, len(got), tc.wantLen)
		}
		if tc.wantLen > 0 && got[0].Title != tc.wantFirst {
			t.Fatalf("PageSlice(page=%d, size=%d)[0] = %q, want %q", tc.page, tc.pageSize, got[0].Title, tc.wantFirst)
		}
	}
}

func TestPaginate(t *testing.T) {
	result := &Result{
		Jobs:     make([]models.Job, 7),
		Fallback: true,
	}

	resp := Paginate(result, 2, 5)
	if resp.Total != 7 {
		t.Fatalf("Total = %d, want 7", resp.Total)
	}
	if resp.Returned != 2 {
		t.Fatalf("Returned = %d, want 2", resp.Returned)
	}
	if resp.Page != 2 || resp.PageSize != 5 {
		t.Fatalf("page = %d/%d, want 2/5", resp.Page, resp.PageSize)
	}
	if !resp.Fallback {
		t.Fatalf("Fallback flag dropped during pagination")
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(resp.Rows))
	}
}
