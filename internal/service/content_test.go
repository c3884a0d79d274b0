package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/vietddude/touradmin/internal/core/domain"
)

func TestHeroSlidesService_CreateRequiresImage(t *testing.T) {
	doer := newFakeDoer()
	svc := NewHeroSlidesService(doer)

	_, err := svc.Create(context.Background(), domain.HeroSlideInput{Title: "Summer in Sapa"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Error() != "Image is required" {
		t.Errorf("unexpected message %q", vErr.Error())
	}
	if doer.count() != 0 {
		t.Errorf("expected no request, got %d", doer.count())
	}
}

func TestHeroSlidesService_Create(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"id":"s1","title":"Summer in Sapa","imageUrl":"https://cdn/s1.jpg"}}`))
	svc := NewHeroSlidesService(doer)

	slide, err := svc.Create(context.Background(), domain.HeroSlideInput{
		Title:    "Summer in Sapa",
		LinkURL:  "https://example.com/tours/sapa",
		Order:    1,
		IsActive: true,
		Image:    &domain.Upload{Filename: "sapa.png", Data: []byte("png")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slide.ImageURL == "" {
		t.Errorf("expected image url, got %+v", slide)
	}

	mf := readForm(t, doer.last(t))
	if mf.Value["isActive"][0] != "true" || mf.Value["order"][0] != "1" {
		t.Errorf("unexpected fields %v", mf.Value)
	}
	if name, _ := readFile(t, mf, "image", 0); name != "sapa.png" {
		t.Errorf("unexpected filename %s", name)
	}
}

func TestHeroSlidesService_Reorder(t *testing.T) {
	doer := newFakeDoer()
	svc := NewHeroSlidesService(doer)

	if err := svc.Reorder(context.Background(), []string{"s3", "s1", "s2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := doer.last(t)
	if req.Method != http.MethodPut || req.Path != "/admin/hero-slides/reorder" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}
	body := req.Body.(map[string][]string)
	if got := body["order"]; len(got) != 3 || got[0] != "s3" {
		t.Errorf("unexpected order %v", got)
	}

	if err := svc.Reorder(context.Background(), nil); err == nil {
		t.Error("expected error for empty order")
	}
}

func TestBlogsService_Create(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"id":"b1","status":"draft"}}`))
	svc := NewBlogsService(doer)

	_, err := svc.Create(context.Background(), domain.BlogInput{
		Title:   "Street food in Hanoi",
		Content: "<p>Pho</p>",
		Tags:    []string{"food", "hanoi"},
		Status:  domain.BlogStatusDraft,
		Cover:   &domain.Upload{Filename: "pho.jpg", Data: []byte("jpg")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mf := readForm(t, doer.last(t))
	if got := mf.Value["tags"][0]; got != `["food","hanoi"]` {
		t.Errorf("unexpected tags %s", got)
	}
	if name, data := readFile(t, mf, "coverImage", 0); name != "pho.jpg" || data != "jpg" {
		t.Errorf("unexpected cover %s %q", name, data)
	}
}

func TestBlogsService_InvalidStatus(t *testing.T) {
	doer := newFakeDoer()
	svc := NewBlogsService(doer)

	_, err := svc.Create(context.Background(), domain.BlogInput{Title: "t", Content: "c", Status: "scheduled"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Error() != "Status must be one of: draft, published" {
		t.Errorf("unexpected message %q", vErr.Error())
	}
}

func TestBlogFilter_Values(t *testing.T) {
	f := BlogFilter{ListParams: ListParams{Limit: 5}, Status: domain.BlogStatusPublished, Tag: "food"}
	if got := f.values().Encode(); got != "limit=5&status=published&tag=food" {
		t.Errorf("unexpected query %q", got)
	}
}
