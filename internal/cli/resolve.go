package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/engage/internal/domain"
)

// matchID resolves input against ids: exact match first, then a unique prefix.
func matchID(entity, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", entity)
	}
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", entity, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", entity, input, len(matches))
	}
}

func resolveWorkPackageID(ctx context.Context, app *App, input string) (string, error) {
	packages, err := app.Packages.List(ctx, app.Tenant)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(packages))
	for _, wp := range packages {
		if strings.EqualFold(wp.Name, input) {
			return wp.ID, nil
		}
		ids = append(ids, wp.ID)
	}
	return matchID("work package", input, ids)
}

// resolvePhase accepts a phase position ("2") or an ID prefix.
func resolvePhase(ctx context.Context, app *App, workPackageID, input string) (*domain.Phase, error) {
	phases, err := app.Phases.ListByWorkPackage(ctx, workPackageID)
	if err != nil {
		return nil, err
	}
	if pos, err := strconv.Atoi(input); err == nil {
		for _, p := range phases {
			if p.Position == pos {
				return p, nil
			}
		}
	}
	ids := make([]string, 0, len(phases))
	byID := make(map[string]*domain.Phase, len(phases))
	for _, p := range phases {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}
	id, err := matchID("phase", input, ids)
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}

func resolveItemID(ctx context.Context, app *App, workPackageID, input string) (string, error) {
	items, err := app.Items.ListByWorkPackage(ctx, workPackageID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return matchID("item", input, ids)
}

func resolveArtifactID(ctx context.Context, app *App, kind domain.ArtifactKind, input string) (string, error) {
	artifacts, err := app.Artifacts.List(ctx, kind, app.Tenant)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		ids = append(ids, a.ID)
	}
	return matchID(string(kind), input, ids)
}

func parseKind(s string) (domain.ArtifactKind, error) {
	kind := domain.ArtifactKind(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if !kind.IsKnown() {
		return "", fmt.Errorf("unknown artifact kind %q", s)
	}
	return kind, nil
}
