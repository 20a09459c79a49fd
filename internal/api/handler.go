// Package api exposes the converter over HTTP.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
	"github.com/insightdelivered/bank-txt-converter/internal/parser"
	"github.com/insightdelivered/bank-txt-converter/internal/reader"
	"github.com/insightdelivered/bank-txt-converter/internal/writer"
)

const apiVersion = "3.6.0"

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Bank         string               `json:"bank,omitempty"`
	BankName     string               `json:"bankName,omitempty"`
	Confidence   float64              `json:"confidence"`
	Account      *models.AccountInfo  `json:"account,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Summary      models.Summary       `json:"summary"`
	Stats        models.ParseStats    `json:"stats"`
	UsedFallback bool                 `json:"usedFallback"`
	CSV          string               `json:"csv,omitempty"`
	Count        int                  `json:"count"`
	Encoding     string               `json:"encoding,omitempty"`
	Version      string               `json:"version,omitempty"`
}

// engineLog is set by NewApp; handlers are plain functions so tests can
// mount them on a bare fiber app.
var engineLog = zerolog.Nop()

// NewApp builds the fiber application with all routes registered.
func NewApp(log zerolog.Logger) *fiber.App {
	engineLog = log
	app := fiber.New(fiber.Config{
		BodyLimit:    32 << 20,
		ErrorHandler: errorHandler,
	})

	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": apiVersion,
	})
}

// HandleConvert accepts a statement TXT (multipart field "file" or raw
// form field "text") and returns the parsed transactions plus a CSV
// rendering.
func HandleConvert(c *fiber.Ctx) error {
	var lines []string
	encodingName := ""

	if fileHeader, err := c.FormFile("file"); err == nil {
		name := strings.ToLower(fileHeader.Filename)
		if !strings.HasSuffix(name, ".txt") {
			return writeError(c, fiber.StatusBadRequest, "Only .txt files are supported.")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to open upload: %v", err))
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to read upload.")
		}

		var text string
		text, encodingName = reader.Decode(data)
		lines = reader.SplitLines(text)
	} else if text := c.FormValue("text"); text != "" {
		lines = reader.SplitLines(text)
	} else {
		return writeError(c, fiber.StatusBadRequest, "No input. Upload form field 'file' or send raw 'text'.")
	}

	engine := parser.NewEngine(engineLog)
	info := engine.ParseDocument(lines)

	// Explicit bank parameter overrides the advisory detection result.
	if bankParam := c.FormValue("bank"); bankParam != "" {
		bank := models.BankType(strings.ToLower(bankParam))
		if parser.ProfileFor(bank) == nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("Unknown bank: %q.", bankParam))
		}
		info.Bank = bank
		info.Confidence = 1.0
	}

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: c.FormValue("header") != "false"}
	if err := csvWriter.Write(&csvBuf, info); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	txns := info.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}

	resp := ConvertResponse{
		Success:      true,
		Bank:         string(info.Bank),
		BankName:     parser.DisplayName(info.Bank),
		Confidence:   info.Confidence,
		Transactions: txns,
		Summary:      models.Summarize(txns),
		Stats:        info.Stats,
		UsedFallback: info.UsedFallback,
		CSV:          csvBuf.String(),
		Count:        len(txns),
		Encoding:     encodingName,
		Version:      apiVersion,
	}

	if info.Account != (models.AccountInfo{}) {
		acct := info.Account
		resp.Account = &acct
	}

	return c.JSON(resp)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return writeError(c, code, err.Error())
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
	})
}
