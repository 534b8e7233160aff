package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/importer"
	"github.com/alexanderramin/engage/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	tenant   string
	observer UseCaseObserver
}

// NewImportService writes imported plans under tenant unless the plan names
// its own.
func NewImportService(uow db.UnitOfWork, tenant string, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		tenant:   tenant,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadPlan(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	return s.ImportPlanFromSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.PlanSchema) (result *app.ImportResult, err error) {
	fields := map[string]any{"work_package": schema.WorkPackage.Name}
	done := observe(ctx, s.observer, "import-plan", fields)
	defer func() { done(err) }()

	if errs := importer.ValidatePlan(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema, s.tenant)
	if err != nil {
		return nil, fmt.Errorf("converting plan: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteWorkPackageRepo(tx).Create(ctx, generated.WorkPackage); err != nil {
			return fmt.Errorf("creating work package: %w", err)
		}
		phases := repository.NewSQLitePhaseRepo(tx)
		for _, p := range generated.Phases {
			if err := phases.Create(ctx, p); err != nil {
				return fmt.Errorf("creating phase %q: %w", p.Name, err)
			}
		}
		items := repository.NewSQLiteItemRepo(tx)
		for _, it := range generated.Items {
			if err := items.Create(ctx, it); err != nil {
				return fmt.Errorf("creating item %q: %w", it.Title, err)
			}
		}
		refs := repository.NewSQLiteReferenceRepo(tx)
		for _, r := range generated.References {
			if err := refs.Create(ctx, r); err != nil {
				return fmt.Errorf("linking %s %s: %w", r.Kind, r.ReferencedID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["phase_count"] = len(generated.Phases)
	fields["item_count"] = len(generated.Items)
	return &app.ImportResult{
		WorkPackage:    generated.WorkPackage,
		PhaseCount:     len(generated.Phases),
		ItemCount:      len(generated.Items),
		ReferenceCount: len(generated.References),
	}, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "plan validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
