package mockserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// envelopeCodeKey stores the envelope code on the gin context so the
// logger and metrics can report it.
const envelopeCodeKey = "envelope_code"

// Envelope codes used by the mock. Not-found and bad-input failures are
// reported in the envelope with HTTP 200.
const (
	codeOK         = 0
	codeBadRequest = 400
	codeNotFound   = 404
)

type envelope struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type handlers struct {
	fleet   *Fleet
	metrics *metrics
}

func respond(c *gin.Context, data any, message string) {
	c.Set(envelopeCodeKey, codeOK)
	c.JSON(http.StatusOK, envelope{Code: codeOK, Data: data, Message: message})
}

func fail(c *gin.Context, code int, message string) {
	c.Set(envelopeCodeKey, code)
	c.JSON(http.StatusOK, envelope{Code: code, Data: nil, Message: message})
}

// failWith maps fleet errors onto envelope codes.
func failWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrServerNotFound):
		fail(c, codeNotFound, "Server not found")
	case errors.Is(err, ErrConfigNotFound):
		fail(c, codeNotFound, "Config not found")
	case errors.Is(err, ErrInvalidInput):
		fail(c, codeBadRequest, validationMessage(err))
	default:
		c.Set(envelopeCodeKey, http.StatusInternalServerError)
		c.JSON(http.StatusInternalServerError, envelope{Code: http.StatusInternalServerError, Message: err.Error()})
	}
}

// validationMessage strips the sentinel prefix and capitalises the rest.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	if msg == "" {
		return "Invalid input"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func (h *handlers) listServers(c *gin.Context) {
	respond(c, h.fleet.Servers(), "Success")
}

func (h *handlers) getServer(c *gin.Context) {
	srv, err := h.fleet.Server(c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, srv, "Success")
}

func (h *handlers) updateServer(c *gin.Context) {
	if _, err := h.fleet.Server(c.Param("id")); err != nil {
		failWith(c, err)
		return
	}

	var patch ServerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, codeBadRequest, "Invalid request body")
		return
	}

	srv, err := h.fleet.UpdateServer(c.Param("id"), patch)
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, srv, "Server updated successfully")
}

func (h *handlers) flushPages(c *gin.Context) {
	if err := h.fleet.FlushPages(c.Param("id")); err != nil {
		failWith(c, err)
		return
	}
	respond(c, nil, "Pages flushed successfully")
}

func (h *handlers) listMods(c *gin.Context) {
	mods, err := h.fleet.Mods(c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, mods, "Success")
}

func (h *handlers) listConfigs(c *gin.Context) {
	configs, err := h.fleet.Configs(c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, configs, "Success")
}

func (h *handlers) getConfig(c *gin.Context) {
	cfg, err := h.fleet.Config(c.Param("id"), c.Param("modId"))
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, cfg, "Success")
}

type configBody struct {
	Content *string `json:"content"`
}

func (h *handlers) updateConfig(c *gin.Context) {
	if _, err := h.fleet.Config(c.Param("id"), c.Param("modId")); err != nil {
		failWith(c, err)
		return
	}

	var body configBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Content == nil {
		fail(c, codeBadRequest, "Content is required")
		return
	}

	cfg, err := h.fleet.UpdateConfig(c.Param("id"), c.Param("modId"), *body.Content)
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, cfg, "Config updated successfully")
}

func (h *handlers) logs(c *gin.Context) {
	limit := queryInt(c, "limit")
	offset := queryInt(c, "offset")

	logs, err := h.fleet.Logs(c.Param("id"), limit, offset)
	if err != nil {
		failWith(c, err)
		return
	}
	respond(c, logs, "Success")
}

type commandBody struct {
	Command string `json:"command"`
}

func (h *handlers) execute(c *gin.Context) {
	if _, err := h.fleet.Server(c.Param("id")); err != nil {
		failWith(c, err)
		return
	}

	var body commandBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, codeBadRequest, "Invalid request body")
		return
	}

	result, err := h.fleet.Execute(c.Param("id"), body.Command)
	if err != nil {
		failWith(c, err)
		return
	}
	h.metrics.commands.Inc()
	respond(c, result, "Command executed successfully")
}

func (h *handlers) notFound(c *gin.Context) {
	c.Set(envelopeCodeKey, codeNotFound)
	c.JSON(http.StatusNotFound, envelope{Code: codeNotFound, Message: "Not found"})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// queryInt parses a non-negative integer query parameter. Missing or
// malformed values read as zero, which means "unbounded".
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
