package services

import (
	"context"
	"errors"
	"testing"

	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/types"
)

func newProgressFixture(t *testing.T) (ProgressService, *testFixture) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	f := &testFixture{db: db}
	f.courseRepo = repos.NewCourseRepo(db, log)
	f.moduleRepo = repos.NewCourseModuleRepo(db, log)
	svc := NewProgressService(db, log, f.courseRepo, f.moduleRepo)
	return svc, f
}

func TestAdvanceProgressComputation(t *testing.T) {
	cases := []struct {
		name         string
		lessons      int
		moduleCount  int
		lessonIndex  int
		wantProgress int
	}{
		{name: "mid_course", moduleCount: 5, lessonIndex: 2, wantProgress: 60},
		{name: "index_past_end_clamps", moduleCount: 3, lessonIndex: 10, wantProgress: 100},
		{name: "first_lesson", moduleCount: 4, lessonIndex: 0, wantProgress: 25},
		{name: "last_lesson", moduleCount: 4, lessonIndex: 3, wantProgress: 100},
		{name: "fallback_to_lessons_column", lessons: 8, lessonIndex: 1, wantProgress: 25},
		{name: "modules_beat_lessons_column", lessons: 10, moduleCount: 2, lessonIndex: 0, wantProgress: 50},
		{name: "no_total_floors_to_one", lessonIndex: 0, wantProgress: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, f := newProgressFixture(t)
			course := seedCourse(t, f.db, "course-"+tc.name, tc.lessons, 0, tc.moduleCount)

			effects, err := svc.AdvanceProgress(context.Background(), nil, course.Slug, tc.lessonIndex)
			if err != nil {
				t.Fatalf("AdvanceProgress: %v", err)
			}
			if len(effects) == 0 {
				t.Fatal("expected effects, got none")
			}

			var stored types.Course
			if err := f.db.First(&stored, "id = ?", course.ID).Error; err != nil {
				t.Fatalf("reload course: %v", err)
			}
			if stored.Progress != tc.wantProgress {
				t.Fatalf("progress=%d, want %d", stored.Progress, tc.wantProgress)
			}
		})
	}
}

func TestAdvanceProgressEffectOrder(t *testing.T) {
	svc, f := newProgressFixture(t)
	seedCourse(t, f.db, "intro-go", 0, 0, 5)

	effects, err := svc.AdvanceProgress(context.Background(), nil, "intro-go", 2)
	if err != nil {
		t.Fatalf("AdvanceProgress: %v", err)
	}

	want := []Effect{
		{Kind: EffectInvalidate, Path: "/dashboard"},
		{Kind: EffectInvalidate, Path: "/dashboard/courses"},
		{Kind: EffectInvalidate, Path: "/dashboard/courses/intro-go"},
		{Kind: EffectInvalidate, Path: "/dashboard/courses/intro-go/lessons/3"},
		{Kind: EffectRedirect, Path: "/dashboard/courses/intro-go"},
	}
	if len(effects) != len(want) {
		t.Fatalf("got %d effects, want %d", len(effects), len(want))
	}
	for i := range want {
		if effects[i] != want[i] {
			t.Fatalf("effect[%d]=%+v, want %+v", i, effects[i], want[i])
		}
	}
	if effects[len(effects)-1].Kind != EffectRedirect {
		t.Fatal("redirect must be the terminal effect")
	}
}

func TestAdvanceProgressMonotonic(t *testing.T) {
	svc, f := newProgressFixture(t)
	course := seedCourse(t, f.db, "golang-basics", 0, 0, 5)

	if _, err := svc.AdvanceProgress(context.Background(), nil, course.Slug, 4); err != nil {
		t.Fatalf("first advance: %v", err)
	}
	// A later call with a smaller index must not move progress backwards.
	if _, err := svc.AdvanceProgress(context.Background(), nil, course.Slug, 1); err != nil {
		t.Fatalf("second advance: %v", err)
	}

	var stored types.Course
	if err := f.db.First(&stored, "id = ?", course.ID).Error; err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if stored.Progress != 100 {
		t.Fatalf("progress=%d, want 100 (smaller index must not regress it)", stored.Progress)
	}
}

func TestAdvanceProgressInvalidInput(t *testing.T) {
	svc, f := newProgressFixture(t)
	course := seedCourse(t, f.db, "valid-course", 0, 0, 4)

	cases := []struct {
		name        string
		slug        string
		lessonIndex int
	}{
		{name: "empty_slug", slug: "", lessonIndex: 0},
		{name: "negative_index", slug: course.Slug, lessonIndex: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AdvanceProgress(context.Background(), nil, tc.slug, tc.lessonIndex); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err=%v, want ErrInvalidInput", err)
			}
		})
	}

	// Neither rejected call may have touched the stored row.
	var stored types.Course
	if err := f.db.First(&stored, "id = ?", course.ID).Error; err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if stored.Progress != 0 {
		t.Fatalf("progress=%d, want 0 after rejected inputs", stored.Progress)
	}
}

func TestAdvanceProgressUnknownCourse(t *testing.T) {
	svc, _ := newProgressFixture(t)
	if _, err := svc.AdvanceProgress(context.Background(), nil, "no-such-course", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
