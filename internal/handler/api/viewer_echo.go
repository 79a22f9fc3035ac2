package api

import (
	"context"
	"errors"
	"strconv"
	"strings"

	models "KepViz/internal/domain/models"
	"KepViz/internal/usecase"
	xhttp "KepViz/pkg/http"
	xlogger "KepViz/pkg/logger"
	"KepViz/pkg/util"

	"github.com/labstack/echo/v4"
)

// ViewerEchoHandler serves the viewer's selectors and figures as JSON.
type ViewerEchoHandler struct {
	logger *xlogger.Logger
	viewer *usecase.Viewer
	series *usecase.SeriesUseCase
}

func NewViewerEchoHandler(logger *xlogger.Logger, viewer *usecase.Viewer, series *usecase.SeriesUseCase) *ViewerEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &ViewerEchoHandler{logger: logger, viewer: viewer, series: series}
}

func (h *ViewerEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/frequencies", h.Frequencies)
	g.GET("/names", h.NamesByIndex)
	g.GET("/names/:freq", h.Names)
	g.GET("/series", h.Series)
	g.GET("/figure", h.Figure)
	g.GET("/frame", h.Frame)
	g.GET("/stack", h.Stack)
	g.GET("/initial", h.Initial)
}

func (h *ViewerEchoHandler) Frequencies(c echo.Context) error {
	opts := h.viewer.FrequencyOptions()
	return xhttp.ListResponse(c, opts, len(opts))
}

func (h *ViewerEchoHandler) Names(c echo.Context) error {
	req := &models.NamesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return h.names(c, models.Frequency(req.Freq))
}

// NamesByIndex resolves ?freq_index=N to a frequency code, then lists its names.
func (h *ViewerEchoHandler) NamesByIndex(c echo.Context) error {
	req := &models.NamesByIndexRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	i, err := strconv.Atoi(req.FreqIndex)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("freq_index", "freq_index must be an integer, got %q", req.FreqIndex))
	}
	freq, err := models.FrequencyByIndex(i)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("freq_index", err.Error()).
			WithParam("max", len(models.Frequencies())-1))
	}
	return h.names(c, freq)
}

func (h *ViewerEchoHandler) names(c echo.Context, freq models.Frequency) error {
	opts, err := h.viewer.UpdateNames(c.Request().Context(), freq)
	if err != nil {
		h.logger.Error("names usecase error", xlogger.String("freq", string(freq)), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, upstreamError(c.Request().Context(), "names unavailable", err))
	}
	return xhttp.ListResponse(c, opts, len(opts))
}

func (h *ViewerEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	params := usecase.GetSeriesParams{Freq: models.Frequency(req.Freq), Name: req.Name}
	if req.From != "" {
		params.Range.Start, _ = util.ParseDate(req.From)
	}
	if req.To != "" {
		params.Range.End, _ = util.ParseDate(req.To)
	}
	if !params.Range.Start.IsZero() && !params.Range.End.IsZero() && params.Range.Start.After(params.Range.End) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("from", "from %s must not be after to %s", req.From, req.To))
	}

	s, err := h.series.GetSeries(c.Request().Context(), params)
	if err != nil {
		h.logger.Error("series usecase error",
			xlogger.String("freq", req.Freq),
			xlogger.String("name", req.Name),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, upstreamError(c.Request().Context(), "datapoints unavailable", err))
	}
	return xhttp.SuccessResponse(c, toSeriesResponse(s))
}

func (h *ViewerEchoHandler) Figure(c echo.Context) error {
	req := &models.FigureRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	kind := h.viewer.Context().Kind
	if req.Kind != "" {
		k, err := models.ParseChartKind(req.Kind)
		if err != nil {
			return xhttp.AppErrorResponse(c, unknownKindError(req.Kind))
		}
		kind = k
	}

	fig, err := h.viewer.Figure(c.Request().Context(), models.Frequency(req.Freq), req.Name, kind)
	if err != nil {
		if errors.Is(err, models.ErrUnknownChartKind) {
			return xhttp.AppErrorResponse(c, unknownKindError(string(kind)))
		}
		h.logger.Error("figure usecase error", xlogger.String("freq", req.Freq), xlogger.String("name", req.Name), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, upstreamError(c.Request().Context(), "datapoints unavailable", err))
	}
	return xhttp.SuccessResponse(c, fig)
}

func (h *ViewerEchoHandler) Frame(c echo.Context) error {
	req := &models.FrameRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	names := util.SplitCSV(req.Names)
	if len(names) == 0 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("names", usecase.ErrNoNames.Error()))
	}

	f, err := h.series.Frame(c.Request().Context(), models.Frequency(req.Freq), names...)
	if err != nil {
		h.logger.Error("frame usecase error", xlogger.String("freq", req.Freq), xlogger.Strings("names", names), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, upstreamError(c.Request().Context(), "datapoints unavailable", err))
	}
	return xhttp.SuccessResponse(c, &models.FrameResponse{
		Freq:  f.Freq,
		Names: f.Names,
		Dates: util.FormatDates(f.Dates),
		Rows:  f.Cells,
	})
}

// Stack draws several indicators of one frequency on one figure.
func (h *ViewerEchoHandler) Stack(c echo.Context) error {
	req := &models.FrameRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	names := util.SplitCSV(req.Names)
	if len(names) == 0 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("names", usecase.ErrNoNames.Error()))
	}

	fig, err := h.viewer.StackFigure(c.Request().Context(), models.Frequency(req.Freq), names...)
	if err != nil {
		h.logger.Error("stack usecase error", xlogger.String("freq", req.Freq), xlogger.Strings("names", names), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, upstreamError(c.Request().Context(), "datapoints unavailable", err))
	}
	return xhttp.SuccessResponse(c, fig)
}

func (h *ViewerEchoHandler) Initial(c echo.Context) error {
	view, err := h.viewer.Initialize(c.Request().Context())
	if err != nil {
		h.logger.Error("initialize usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, upstreamError(c.Request().Context(), "initial view unavailable", err))
	}
	return xhttp.SuccessResponse(c, view)
}

// upstreamError maps a data source failure to 502. A cancelled request is not the upstream's fault.
func upstreamError(ctx context.Context, msg string, err error) *xhttp.AppError {
	if ctx.Err() != nil {
		return xhttp.InternalError("request cancelled").WithError(err)
	}
	return xhttp.UpstreamError(msg).WithError(err)
}

func unknownKindError(kind string) *xhttp.AppError {
	kinds := models.ChartKinds()
	options := make([]string, len(kinds))
	for i, k := range kinds {
		options[i] = string(k)
	}
	return xhttp.BadRequestErrorf("kind", "kind %q must be one of: %s", kind, strings.Join(options, ", ")).
		WithParam("options", options)
}

func toSeriesResponse(s *models.Series) *models.SeriesResponse {
	values := s.Values
	if values == nil {
		values = []*float64{}
	}
	return &models.SeriesResponse{
		Name:   s.Name,
		Freq:   s.Freq,
		Dates:  util.FormatDates(s.Dates),
		Values: values,
	}
}
