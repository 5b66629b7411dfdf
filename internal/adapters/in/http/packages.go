package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Package is the wire form of a catalog package.
type Package struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Duration    string     `json:"duration,omitempty"`
	Description string     `json:"description,omitempty"`
	Features    []string   `json:"features"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Category    string     `json:"category,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	Sections    []string   `json:"sections,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// PackageRequest is the request body of the package create and update
// endpoints. Price and features are loosely typed: historical clients send
// prices as numbers or numeric strings and feature lists with mixed entries.
type PackageRequest struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Price       any      `json:"price"`
	Duration    *string  `json:"duration"`
	Description *string  `json:"description"`
	Features    any      `json:"features"`
	ImageURL    *string  `json:"imageUrl"`
	Category    *string  `json:"category"`
	Active      *bool    `json:"active"`
	Sections    []string `json:"sections"`
}

// ListPackages handles GET /api/v1/packages - retrieves the catalog.
// Optional query parameter: type (portrait|maternity|events).
func (s *Server) ListPackages(ctx echo.Context) error {
	var typeFilter *catalog.PackageType
	if raw := ctx.QueryParam("type"); raw != "" {
		packageType, err := catalog.ParsePackageType(raw)
		if err != nil {
			return badRequest(ctx, "Invalid package type: "+err.Error())
		}
		typeFilter = &packageType
	}

	query, err := queries.NewListPackagesQuery(typeFilter)
	if err != nil {
		return badRequest(ctx, "Invalid catalog query: "+err.Error())
	}

	packages, err := s.listPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Package, len(packages))
	for i, pkg := range packages {
		response[i] = toPackage(pkg)
	}

	return ctx.JSON(http.StatusOK, response)
}

func toPackage(pkg queries.ListPackagesQueryResponse) Package {
	out := Package{
		ID:          pkg.ID.String(),
		Type:        pkg.Type.String(),
		Title:       pkg.Title,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		Description: pkg.Description,
		Features:    pkg.Features,
		ImageURL:    pkg.ImageURL,
		Category:    pkg.Category,
		Active:      pkg.Active,
		Sections:    pkg.Sections,
	}
	if !pkg.CreatedAt.IsZero() {
		createdAt := pkg.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}

// CreatePackage handles POST /api/v1/packages - registers a catalog package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req PackageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(
		packageID,
		catalog.CoercePackageType(req.Type),
		req.Title,
		catalog.CoercePrice(req.Price),
		stringOrEmpty(req.Duration),
		stringOrEmpty(req.Description),
		catalog.CoerceStringList(req.Features),
		stringOrEmpty(req.ImageURL),
	)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	if handleErr := s.createPackageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": packageID.String()})
}

// UpdatePackage handles PUT /api/v1/packages/:id - partially updates a
// catalog package. Absent fields are left untouched.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid package ID: "+err.Error())
	}

	var req PackageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePackageCommand(packageID, toPackageChanges(req))
	if err != nil {
		return badRequest(ctx, "Invalid package update: "+err.Error())
	}

	if handleErr := s.updatePackageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toPackageChanges(req PackageRequest) catalog.PackageChanges {
	changes := catalog.PackageChanges{
		Duration:    req.Duration,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Active:      req.Active,
		Sections:    req.Sections,
	}
	if req.Type != "" {
		packageType := catalog.CoercePackageType(req.Type)
		changes.Type = &packageType
	}
	if req.Title != "" {
		title := req.Title
		changes.Title = &title
	}
	if req.Price != nil {
		price := catalog.CoercePrice(req.Price)
		changes.Price = &price
	}
	if req.Features != nil {
		changes.Features = catalog.CoerceStringList(req.Features)
	}
	return changes
}

// DeletePackage handles DELETE /api/v1/packages/:id - removes a catalog package.
func (s *Server) DeletePackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid package ID: "+err.Error())
	}

	cmd, err := commands.NewDeletePackageCommand(packageID)
	if err != nil {
		return badRequest(ctx, "Invalid package deletion: "+err.Error())
	}

	if handleErr := s.deletePackageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Template is the wire form of a workflow template.
type Template struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// ListTemplates handles GET /api/v1/templates - retrieves every workflow template.
func (s *Server) ListTemplates(ctx echo.Context) error {
	templates, err := s.listTemplatesHandler.Handle(
		ctx.Request().Context(), queries.NewListTemplatesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Template, len(templates))
	for i, tmpl := range templates {
		response[i] = Template{
			ID:         tmpl.ID.String(),
			Name:       tmpl.Name,
			Categories: toCategories(tmpl.Categories),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
