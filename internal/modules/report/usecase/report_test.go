package usecase_test

import (
	"context"
	"errors"
	"testing"

	"aiact/internal/modules/report/dto"
	"aiact/internal/modules/report/service"
	"aiact/internal/modules/report/usecase"
	apperrors "aiact/internal/platform/errors"
)

type fakeDownloader struct {
	payload []byte
	err     error
}

func (f *fakeDownloader) DownloadReport(context.Context, string) ([]byte, error) {
	return f.payload, f.err
}

type fakeSink struct {
	saves int
	path  string
	err   error
}

func (f *fakeSink) Save(string, []byte, string) (string, error) {
	f.saves++
	return f.path, f.err
}

type fakeLinks struct{}

func (fakeLinks) ReportURL(id string) string { return "https://api.example.eu/api/download/" + id }

type fakeInspector struct {
	pages int
	err   error
}

func (f fakeInspector) PageCount(string) (int, error) { return f.pages, f.err }

func reportInput(id string) dto.DownloadInput {
	return dto.DownloadInput{ReportID: id, Dir: "/tmp/reports"}
}

func TestDownloadSavesAndReportsPageCount(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{path: "/tmp/reports/EU-AI-Compliance-Report-rep-1.pdf"}
	svc := service.NewReportService(&fakeDownloader{payload: []byte("%PDF-1.4 body")}, sink, fakeInspector{pages: 3})
	uc := usecase.NewInteractor(svc, fakeLinks{})

	out, err := uc.Download(context.Background(), reportInput("rep-1"))
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if out.Path != sink.path || out.Bytes != len("%PDF-1.4 body") || out.Pages != 3 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if sink.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", sink.saves)
	}
}

func TestInspectionFailureIsNonFatal(t *testing.T) {
	t.Parallel()
	svc := service.NewReportService(
		&fakeDownloader{payload: []byte("not really a pdf")},
		&fakeSink{path: "/tmp/x.pdf"},
		fakeInspector{err: errors.New("malformed xref")},
	)
	uc := usecase.NewInteractor(svc, fakeLinks{})

	out, err := uc.Download(context.Background(), reportInput("rep-1"))
	if err != nil {
		t.Fatalf("download must succeed despite inspection failure: %v", err)
	}
	if out.Pages != 0 {
		t.Fatalf("expected unknown page count, got %d", out.Pages)
	}
}

func TestFailedFetchNeverReachesTheSink(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	svc := service.NewReportService(&fakeDownloader{err: &apperrors.RequestError{Message: "Failed to download report"}}, sink, nil)
	uc := usecase.NewInteractor(svc, fakeLinks{})

	if _, err := uc.Download(context.Background(), reportInput("rep-1")); !apperrors.IsRequest(err) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if sink.saves != 0 {
		t.Fatalf("no save may happen for a failed fetch")
	}
}

func TestURLIsPure(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewReportService(nil, nil, nil), fakeLinks{})
	if got := uc.URL("rep-1"); got != "https://api.example.eu/api/download/rep-1" {
		t.Fatalf("unexpected url: %s", got)
	}
}
