package web

import (
	"bufio"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"proteindata.org/uniprot-header-api/internal/data"
	"proteindata.org/uniprot-header-api/internal/uniprot"
)

type VersionInfo struct {
	Api        string `json:"api"`
	BuildTime  string `json:"build_time"`
	GitVersion string `json:"git_version"`
}

func (app *application) version(c *gin.Context) {
	version_info := VersionInfo{
		Api:        "1.0",
		BuildTime:  viper.GetString("buildTime"),
		GitVersion: viper.GetString("gitVer"),
	}
	c.JSON(http.StatusOK, &version_info)
}

type parseRequest struct {
	Header string `json:"header" binding:"required"`
}

type parseError struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
}

type parseResult struct {
	Record   uniprot.UniProtKB `json:"record"`
	Leftover string            `json:"leftover,omitempty"`
}

func (app *application) parse(c *gin.Context) {
	var req parseRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, parseError{Message: "Invalid request", Error: true})
		return
	}

	record, leftover, err := uniprot.ParseUniProtKB(req.Header)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, parseError{Message: err.Error(), Error: true})
		return
	}

	c.JSON(http.StatusOK, &parseResult{Record: record, Leftover: leftover})
}

type isoformParseResult struct {
	Record   uniprot.UniProtKBIsoform `json:"record"`
	Leftover string                   `json:"leftover,omitempty"`
}

func (app *application) parseIsoform(c *gin.Context) {
	var req parseRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, parseError{Message: "Invalid request", Error: true})
		return
	}

	record, leftover, err := uniprot.ParseUniProtKBIsoform(req.Header)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, parseError{Message: err.Error(), Error: true})
		return
	}

	c.JSON(http.StatusOK, &isoformParseResult{Record: record, Leftover: leftover})
}

type extractRecord struct {
	Line  int              `json:"line"`
	Entry data.HeaderEntry `json:"entry"`
}

type extractError struct {
	Line    int    `json:"line"`
	Header  string `json:"header"`
	Message string `json:"message"`
}

type extractResult struct {
	ID      string          `json:"id"`
	Total   int             `json:"total"`
	Records []extractRecord `json:"records"`
	Errors  []extractError  `json:"errors,omitempty"`
}

// extract takes an uploaded FASTA file and parses every header in it,
// routing each line to the canonical or the isoform parser. Malformed
// headers are reported per line; they do not fail the request.
func (app *application) extract(c *gin.Context) {
	upload, err := c.FormFile("fasta")
	if err != nil {
		c.JSON(http.StatusBadRequest, parseError{Message: "Missing fasta upload", Error: true})
		return
	}

	file, err := upload.Open()
	if err != nil {
		app.serverError(c, err)
		return
	}
	defer file.Close()

	result := extractResult{
		ID:      uuid.New().String(),
		Records: []extractRecord{},
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !strings.HasPrefix(text, ">") {
			continue
		}
		result.Total++

		entry, _, err := data.EntryFromHeader(text)
		if err != nil {
			result.Errors = append(result.Errors, extractError{Line: line, Header: text, Message: err.Error()})
			continue
		}
		result.Records = append(result.Records, extractRecord{Line: line, Entry: entry})
	}
	if err := scanner.Err(); err != nil {
		app.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, &result)
}

func (app *application) stats(c *gin.Context) {
	counts, err := app.Models.Headers.Counts()
	if err != nil {
		app.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (app *application) headers(c *gin.Context) {
	accession := c.Param("accession")
	entries, err := app.Models.Headers.Get(accession)
	if errors.Is(err, data.ErrRecordNotFound) {
		app.notFound(c)
		return
	} else if err != nil {
		app.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
