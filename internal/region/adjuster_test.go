package region

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

func sampleEstimate() *model.EstimateResult {
	result := &model.EstimateResult{
		ProjectID: "EST-test",
		Materials: []model.MaterialItem{
			{Name: "Cement", Quantity: 10, Unit: "bags", Category: "Walls", BasePrice: 10, UnitPrice: 10, TotalPrice: 100, RegionMultiplier: 1, BrandMultiplier: 1},
			{Name: "Sand", Quantity: 2, Unit: "m³", Category: "Walls", BasePrice: 30, UnitPrice: 30, TotalPrice: 60, RegionMultiplier: 1, BrandMultiplier: 1},
		},
		WasteBufferPercentage: 10,
		ProjectDetails: model.ProjectInput{
			ProjectType:  model.ProjectTypeWall,
			QualityLevel: model.QualityStandard,
		},
	}
	result.RecomputeTotals()
	return result
}

func newTestAdjuster(serverURL string, timeout time.Duration) *Adjuster {
	var advisor Advisor
	if serverURL != "" {
		advisor = NewAdvisorClient(serverURL, "", timeout)
	}
	return NewAdjuster(advisor, zerolog.Nop())
}

func TestAdjustPricesUsesAdvisorMultiplier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/market-adjustment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"multiplier":1.2,"reasoning":"high demand","marketTrends":["cement up"]}`))
	}))
	defer server.Close()

	adjusted := newTestAdjuster(server.URL, time.Second).AdjustPrices(context.Background(), sampleEstimate(), "Almaty")

	if adjusted.Source != SourceAdvisor {
		t.Fatalf("expected advisor source, got %s", adjusted.Source)
	}
	if adjusted.Multiplier != 1.2 {
		t.Fatalf("expected multiplier 1.2, got %v", adjusted.Multiplier)
	}

	cement := adjusted.Result.Materials[0]
	if cement.UnitPrice != 12 {
		t.Errorf("expected unit price 12, got %v", cement.UnitPrice)
	}
	if cement.TotalPrice != 120 {
		t.Errorf("expected line total 120, got %v", cement.TotalPrice)
	}
	if adjusted.Result.Subtotal != 192 {
		t.Errorf("expected subtotal 192, got %v", adjusted.Result.Subtotal)
	}
	if adjusted.Result.Total != model.Round2(192*1.10) {
		t.Errorf("expected total %v, got %v", model.Round2(192*1.10), adjusted.Result.Total)
	}
}

func TestAdjustPricesClampsOutOfBandMultiplier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"multiplier":5.0,"reasoning":"","marketTrends":[]}`))
	}))
	defer server.Close()

	adjusted := newTestAdjuster(server.URL, time.Second).AdjustPrices(context.Background(), sampleEstimate(), "Almaty")
	if adjusted.Multiplier != 1.8 {
		t.Errorf("expected clamp to 1.8, got %v", adjusted.Multiplier)
	}

	server2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"multiplier":0.1,"reasoning":"","marketTrends":[]}`))
	}))
	defer server2.Close()

	adjusted = newTestAdjuster(server2.URL, time.Second).AdjustPrices(context.Background(), sampleEstimate(), "Almaty")
	if adjusted.Multiplier != 0.7 {
		t.Errorf("expected clamp to 0.7, got %v", adjusted.Multiplier)
	}
}

func TestAdjustPricesFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adjusted := newTestAdjuster(server.URL, time.Second).AdjustPrices(context.Background(), sampleEstimate(), "Astana")
	if adjusted.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", adjusted.Source)
	}
	if adjusted.Multiplier != FallbackMultiplier("Astana") {
		t.Errorf("expected static multiplier %v, got %v", FallbackMultiplier("Astana"), adjusted.Multiplier)
	}
}

func TestAdjustPricesFallsBackOnMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"advice":"buy low"}`))
	}))
	defer server.Close()

	adjusted := newTestAdjuster(server.URL, time.Second).AdjustPrices(context.Background(), sampleEstimate(), "Astana")
	if adjusted.Source != SourceFallback {
		t.Fatalf("expected fallback source for malformed body, got %s", adjusted.Source)
	}
}

func TestAdjustPricesFallsBackOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"multiplier":1.5}`))
	}))
	defer server.Close()

	adjusted := newTestAdjuster(server.URL, 50*time.Millisecond).AdjustPrices(context.Background(), sampleEstimate(), "Astana")
	if adjusted.Source != SourceFallback {
		t.Fatalf("expected fallback source on timeout, got %s", adjusted.Source)
	}
}

func TestAdjustPricesUnknownLocationLeavesPricesUnchanged(t *testing.T) {
	baseline := sampleEstimate()
	adjusted := newTestAdjuster("", 0).AdjustPrices(context.Background(), baseline, "Atlantis")

	if adjusted.Multiplier != 1.0 {
		t.Fatalf("expected multiplier 1.0, got %v", adjusted.Multiplier)
	}
	for i, item := range adjusted.Result.Materials {
		if item.UnitPrice != baseline.Materials[i].UnitPrice {
			t.Errorf("line %d: unit price changed from %v to %v", i, baseline.Materials[i].UnitPrice, item.UnitPrice)
		}
	}
	if adjusted.Result.Total != baseline.Total {
		t.Errorf("total changed from %v to %v", baseline.Total, adjusted.Result.Total)
	}
}

func TestAdjustPricesDoesNotMutateBaseline(t *testing.T) {
	baseline := sampleEstimate()
	originalPrice := baseline.Materials[0].UnitPrice

	_ = newTestAdjuster("", 0).AdjustPrices(context.Background(), baseline, "Atyrau")

	if baseline.Materials[0].UnitPrice != originalPrice {
		t.Errorf("baseline mutated: unit price %v", baseline.Materials[0].UnitPrice)
	}
}

func TestAdjustPricesReapplicationIsStable(t *testing.T) {
	// The region multiplier is tracked per line and applied to the root base
	// price, so re-adjusting for the same location does not compound.
	adjuster := newTestAdjuster("", 0)
	first := adjuster.AdjustPrices(context.Background(), sampleEstimate(), "Atyrau")
	second := adjuster.AdjustPrices(context.Background(), first.Result, "Atyrau")

	for i := range first.Result.Materials {
		if first.Result.Materials[i].UnitPrice != second.Result.Materials[i].UnitPrice {
			t.Errorf("line %d: price compounded from %v to %v",
				i, first.Result.Materials[i].UnitPrice, second.Result.Materials[i].UnitPrice)
		}
	}
}

func TestFallbackMultiplierDefaultsToOne(t *testing.T) {
	if got := FallbackMultiplier("Nowhere"); got != 1.0 {
		t.Errorf("expected 1.0 for unknown location, got %v", got)
	}
	if got := FallbackMultiplier("  ALMATY  "); got != 1.15 {
		t.Errorf("expected 1.15 for Almaty, got %v", got)
	}
}
