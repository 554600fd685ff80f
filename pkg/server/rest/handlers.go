package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
	"github.com/organicmaps/organicmaps-sub003/pkg/router"
	"github.com/organicmaps/organicmaps-sub003/pkg/snap"
	"github.com/organicmaps/organicmaps-sub003/pkg/util"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, checkpoints []datastructure.Coordinate) (*router.Route, string, error)
	AdjustRoute(ctx context.Context, req router.AdjustRequest, token string) (*router.Route, string, error)
	NearestRoadSegments(ctx context.Context, lat, lon, radiusM float64, k int) ([]snap.Candidate, error)
	FindMwms(ctx context.Context, start, finish datastructure.Coordinate) ([]datastructure.NumMwmID, error)
}

type NavigationHandler struct {
	svc      NavigationService
	validate *validator.Validate
	trans    ut.Translator
	logger   *zap.Logger
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, logger *zap.Logger) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &NavigationHandler{svc: svc, validate: validate, trans: trans, logger: logger}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.ShortestPath)
			r.Post("/adjust-route", handler.AdjustRoute)
			r.Post("/nearest-segments", handler.NearestRoadSegments)
			r.Post("/mwms", handler.FindMwms)
		})
	})
}

// Coord model info
//
//	@Description	coordinate in degrees
type Coord struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func (c Coord) toCoordinate() datastructure.Coordinate {
	return datastructure.NewCoordinate(c.Lat, c.Lon)
}

func toCoords(points []datastructure.Coordinate) []Coord {
	coords := make([]Coord, 0, len(points))
	for _, p := range points {
		coords = append(coords, Coord{Lat: p.Lat, Lon: p.Lon})
	}
	return coords
}

// ShortestPathRequest model info
//
//	@Description	request body for a route through checkpoints in order
type ShortestPathRequest struct {
	Checkpoints []Coord `json:"checkpoints" validate:"required,min=2,dive"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Checkpoints == nil {
		return errors.New("invalid request")
	}
	return nil
}

// RouteResponse model info
//
//	@Description	response body for a computed route
type RouteResponse struct {
	Path       string                  `json:"path"`
	Overview   string                  `json:"overview"`
	Points     []Coord                 `json:"points"`
	ETA        float64                 `json:"eta"`
	Distance   float64                 `json:"distance"`
	Segments   []datastructure.Segment `json:"segments"`
	Streets    []string                `json:"streets"`
	Modes      []string                `json:"modes"`
	RouteToken string                  `json:"route_token"`
}

func RenderRouteResponse(route *router.Route, token string) *RouteResponse {
	return &RouteResponse{
		Path:       route.Polyline,
		Overview:   datastructure.CreatePolyline(geo.RamesDouglasPeucker(route.Points)),
		Points:     toCoords(route.Points),
		ETA:        util.RoundFloat(route.ETA, 2),
		Distance:   util.RoundFloat(route.DistanceM, 2),
		Segments:   route.Segments,
		Streets:    route.Streets,
		Modes:      route.Modes,
		RouteToken: token,
	}
}

func (h *NavigationHandler) bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	if err := h.validate.Struct(data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return false
	}
	return true
}

func (h *NavigationHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	render.Render(w, r, ErrorRenderer(err))
}

// ShortestPath
//
//	@Summary		route through checkpoints in order
//	@Description	route through checkpoints in order. far subroutes are searched over cross mwm leaps
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body shortest path"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}

	checkpoints := make([]datastructure.Coordinate, 0, len(data.Checkpoints))
	for _, c := range data.Checkpoints {
		checkpoints = append(checkpoints, c.toCoordinate())
	}
	route, token, err := h.svc.ShortestPath(r.Context(), checkpoints)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(route, token))
}

// AdjustRouteRequest model info
//
//	@Description	request body for rerouting from a new position back onto an issued route
type AdjustRouteRequest struct {
	Start Coord `json:"start"`
	// degrees clockwise from north
	Bearing    *float64 `json:"bearing,omitempty" validate:"omitempty,gte=0,lt=360"`
	PassedIdx  int      `json:"passed_idx" validate:"gte=0"`
	RouteToken string   `json:"route_token" validate:"required"`
}

func (s *AdjustRouteRequest) Bind(r *http.Request) error {
	return nil
}

// AdjustRoute
//
//	@Summary		reroute from a new position back onto an issued route
//	@Description	reroute from a new position back onto subroute passed_idx of an issued route. route_token comes from an earlier response
//	@Tags			navigations
//	@Param			body	body	AdjustRouteRequest	true	"request body adjust route"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/adjust-route [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) AdjustRoute(w http.ResponseWriter, r *http.Request) {
	data := &AdjustRouteRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}

	route, token, err := h.svc.AdjustRoute(r.Context(), router.AdjustRequest{
		Start:     data.Start.toCoordinate(),
		Bearing:   data.Bearing,
		PassedIdx: data.PassedIdx,
	}, data.RouteToken)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(route, token))
}

// RoadSnappingRequest model info
//
//	@Description	request body for road snapping
type RoadSnappingRequest struct {
	Lat    float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon    float64 `json:"lon" validate:"gte=-180,lte=180"`
	Radius float64 `json:"radius" validate:"gt=0,lte=5000"`
	K      int     `json:"k" validate:"gt=0,lte=100"`
}

func (s *RoadSnappingRequest) Bind(r *http.Request) error {
	return nil
}

type SnappedSegment struct {
	Segment    datastructure.Segment `json:"segment"`
	Projection Coord                 `json:"projection"`
	Distance   float64               `json:"distance"`
}

// RoadSnappingResponse model info
//
//	@Description	response body for road snapping
type RoadSnappingResponse struct {
	Segments []SnappedSegment `json:"segments"`
}

func RenderRoadSnappingResponse(candidates []snap.Candidate) *RoadSnappingResponse {
	segments := make([]SnappedSegment, 0, len(candidates))
	for _, c := range candidates {
		segments = append(segments, SnappedSegment{
			Segment:    c.Segment,
			Projection: Coord{Lat: c.Projection.Lat, Lon: c.Projection.Lon},
			Distance:   util.RoundFloat(c.DistM, 2),
		})
	}
	return &RoadSnappingResponse{Segments: segments}
}

// NearestRoadSegments
//
//	@Summary		nearest road segments around a point
//	@Description	nearest road segments around a point, at most one per road, closest first
//	@Tags			navigations
//	@Param			body	body	RoadSnappingRequest	true	"request body road snapping"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/nearest-segments [post]
//	@Success		200	{object}	RoadSnappingResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) NearestRoadSegments(w http.ResponseWriter, r *http.Request) {
	data := &RoadSnappingRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}

	candidates, err := h.svc.NearestRoadSegments(r.Context(), data.Lat, data.Lon, data.Radius, data.K)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRoadSnappingResponse(candidates))
}

// MwmsRequest model info
//
//	@Description	request body for the mwms a route would pass
type MwmsRequest struct {
	Start  Coord `json:"start"`
	Finish Coord `json:"finish"`
}

func (s *MwmsRequest) Bind(r *http.Request) error {
	return nil
}

// MwmsResponse model info
//
//	@Description	response body with mwm ids in ascending order
type MwmsResponse struct {
	Mwms []datastructure.NumMwmID `json:"mwms"`
}

// FindMwms
//
//	@Summary		mwms a route would pass
//	@Description	mwms a route from start to finish would pass, searched over the preprocessed regions graph
//	@Tags			navigations
//	@Param			body	body	MwmsRequest	true	"request body find mwms"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/mwms [post]
//	@Success		200	{object}	MwmsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) FindMwms(w http.ResponseWriter, r *http.Request) {
	data := &MwmsRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}

	mwms, err := h.svc.FindMwms(r.Context(), data.Start.toCoordinate(), data.Finish.toCoordinate())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &MwmsResponse{Mwms: mwms})
}
