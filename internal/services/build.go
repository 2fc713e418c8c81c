package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"journey-route-service/internal/domain"
	"journey-route-service/internal/platform/obs"
	"journey-route-service/internal/ports"
)

type BuildRequest struct {
	OutDir       string
	Force        bool
	DryRun       bool
	Curvature    float64
	CurveSamples int
}

type BuildSummary struct {
	Built   int
	Skipped int
	Failed  int
}

// BuildRoutes runs the batch pipeline: load entries, resolve segment
// endpoints, fetch or synthesize geometry, encode, persist one route
// document per entry.
//
// An entry whose output file already exists is skipped unless Force is set.
// A resolution failure fails that entry only; the batch keeps going and the
// summary reports the failure. A fetch failure never fails an entry: the
// segment falls back to synthetic curve geometry.
func BuildRoutes(
	ctx context.Context,
	req BuildRequest,
	loader ports.EntryLoader,
	provider ports.RouteProvider,
) (BuildSummary, error) {
	if req.OutDir == "" {
		return BuildSummary{}, errors.New("build routes: OutDir must be non-empty")
	}

	entries, err := loader.LoadEntries(ctx)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("build routes: %w", err)
	}

	if !req.DryRun {
		if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
			return BuildSummary{}, fmt.Errorf("build routes: create output dir: %w", err)
		}
	}

	var summary BuildSummary
	for idx, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if len(entry.Segments) == 0 {
			continue
		}

		outPath := filepath.Join(req.OutDir, entry.Stem()+".json")
		if !req.Force {
			if _, err := os.Stat(outPath); err == nil {
				summary.Skipped++
				continue
			}
		}

		doc, err := buildEntryDocument(ctx, req, idx, entries, provider)
		if err != nil {
			log.Printf("entry=%s status=failed err=%v", entry.Stem(), err)
			summary.Failed++
			continue
		}

		if req.DryRun {
			log.Printf("entry=%s status=dry-run segments=%d", entry.Stem(), len(doc.Segments))
			summary.Built++
			continue
		}

		if err := writeDocument(outPath, doc); err != nil {
			log.Printf("entry=%s status=failed err=%v", entry.Stem(), err)
			summary.Failed++
			continue
		}

		log.Printf("entry=%s status=built segments=%d", entry.Stem(), len(doc.Segments))
		summary.Built++
	}

	return summary, nil
}

func buildEntryDocument(
	ctx context.Context,
	req BuildRequest,
	idx int,
	entries []domain.Entry,
	provider ports.RouteProvider,
) (_ domain.RouteDocument, err error) {
	entry := entries[idx]
	defer obs.Time(ctx, "build."+entry.Stem())(&err)

	doc := domain.RouteDocument{
		Date:     entry.Date.Format("2006-01-02"),
		Slug:     entry.Slug,
		Segments: make([]domain.RouteSegment, 0, len(entry.Segments)),
	}

	for i, spec := range entry.Segments {
		from, err := ResolveReference(spec.From, idx, entries)
		if err != nil {
			return domain.RouteDocument{}, fmt.Errorf("segment #%d: %w", i+1, err)
		}
		to, err := ResolveReference(spec.To, idx, entries)
		if err != nil {
			return domain.RouteDocument{}, fmt.Errorf("segment #%d: %w", i+1, err)
		}

		segment := buildSegment(ctx, req, spec.Mode, from, to, provider)
		doc.Segments = append(doc.Segments, segment)
	}

	return doc, nil
}

// buildSegment fetches geometry for routable modes and substitutes a
// synthetic curve for everything else, including fetch failures.
func buildSegment(
	ctx context.Context,
	req BuildRequest,
	mode domain.TransportMode,
	from, to ResolvedPoint,
	provider ports.RouteProvider,
) domain.RouteSegment {
	segment := domain.RouteSegment{
		Mode: mode,
		From: from.Label,
		To:   to.Label,
	}

	if mode.Routable() && provider != nil {
		result, err := provider.GetRoute(ctx, from.Coord, to.Coord, mode)
		if err == nil {
			segment.Polyline = domain.EncodePolyline(result.Points)
			segment.DistanceMeters = result.DistanceMeters
			segment.DurationSeconds = result.DurationSeconds
			segment.Fetched = true
			return segment
		}
		log.Printf("route fetch failed, using curve fallback: %s -> %s mode=%s err=%v",
			from.Label, to.Label, mode, err)
	}

	points := CurveBetween(from.Coord, to.Coord, req.Curvature, req.CurveSamples)
	segment.Polyline = domain.EncodePolyline(points)
	segment.DistanceMeters = int(domain.HaversineMeters(from.Coord, to.Coord))
	return segment
}

func writeDocument(path string, doc domain.RouteDocument) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode route document: %w", err)
	}

	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write route document: %w", err)
	}

	return nil
}
