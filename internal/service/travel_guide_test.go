package service

import (
	"context"
	"testing"

	"github.com/vietddude/touradmin/internal/core/domain"
)

func TestTravelGuideService_CityRequiresState(t *testing.T) {
	doer := newFakeDoer()
	svc := NewTravelGuideService(doer)

	if _, err := svc.CreateCity(context.Background(), domain.TravelGuidePlaceInput{Name: "Hoi An"}); err == nil {
		t.Fatal("expected error without state")
	}
	if doer.count() != 0 {
		t.Errorf("expected no request, got %d", doer.count())
	}

	_, err := svc.CreateCity(context.Background(), domain.TravelGuidePlaceInput{
		Name:    "Hoi An",
		StateID: "st1",
		Image:   &domain.Upload{Filename: "hoian.jpg", Data: []byte("x")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := doer.last(t)
	if req.Path != "/admin/travel-guide/cities" {
		t.Errorf("unexpected path %s", req.Path)
	}
	mf := readForm(t, req)
	if mf.Value["stateId"][0] != "st1" {
		t.Errorf("unexpected fields %v", mf.Value)
	}
}

func TestTravelGuideService_StateOmitsStateID(t *testing.T) {
	doer := newFakeDoer()
	svc := NewTravelGuideService(doer)

	_, err := svc.UpdateState(context.Background(), "st1", domain.TravelGuidePlaceInput{Name: "Quang Nam", StateID: "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := doer.last(t)
	if req.Path != "/admin/travel-guide/states/st1" {
		t.Errorf("unexpected path %s", req.Path)
	}
	if _, ok := readForm(t, req).Value["stateId"]; ok {
		t.Error("expected no stateId field on a state")
	}
}

func TestTravelGuideService_ListData(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"data":[{"id":"d1","category":"food"}],` +
		`"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}}`))
	svc := NewTravelGuideService(doer)

	list, err := svc.ListData(context.Background(), DataFilter{CityID: "c1", Category: "food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Data) != 1 {
		t.Errorf("unexpected data %+v", list.Data)
	}
	req := doer.last(t)
	if req.Path != "/admin/travel-guide/data" || req.Query.Encode() != "category=food&cityId=c1" {
		t.Errorf("unexpected request %s?%s", req.Path, req.Query.Encode())
	}
}

func TestTravelGuideService_DataUploadsImages(t *testing.T) {
	doer := newFakeDoer()
	svc := NewTravelGuideService(doer)

	_, err := svc.CreateData(context.Background(), domain.TravelGuideDataInput{
		CityID:   "c1",
		Title:    "Cao lau",
		Category: "food",
		Images: []domain.Upload{
			{Filename: "a.jpg", Data: []byte("a")},
			{Filename: "b.jpg", Data: []byte("b")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mf := readForm(t, doer.last(t))
	if len(mf.File["images"]) != 2 {
		t.Errorf("expected 2 images, got %d", len(mf.File["images"]))
	}
}
