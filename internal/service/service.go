// Package service exposes the inquiry form and the record list over HTTP.
package service

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/flash"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/inquiry"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/metrics"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/model"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/storage"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/validation"
	pkgmodel "gitlab.com/dirk.krummacker/inquiry-service/pkg/model"
)

const (
	messageSubmitted = "Inquiry form submitted successfully!"
	messageCorrect   = "Please correct the errors below."
	messageNotSaved  = "Your inquiry could not be saved. Please try again."
)

//go:embed templates/*.html
var templates embed.FS

// Dependencies are the collaborators of the HTTP layer.
type Dependencies struct {
	Inquiries      *inquiry.Service
	Flasher        *flash.Flasher
	Metrics        *metrics.Metrics
	RequestLogging bool
}

type handler struct {
	inquiries *inquiry.Service
	flasher   *flash.Flasher
	metrics   *metrics.Metrics
}

// SetupHttpRouter initializes the router, loads the templates and registers all endpoints.
func SetupHttpRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID())
	if deps.RequestLogging {
		router.Use(RequestLogger())
	}
	router.SetHTMLTemplate(parseTemplates())

	h := &handler{
		inquiries: deps.Inquiries,
		flasher:   deps.Flasher,
		metrics:   deps.Metrics,
	}
	router.GET("/", h.showForm)
	router.POST("/", h.submitForm)
	router.GET("/records/", h.listRecords)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	router.NoRoute(h.notFound)
	return router
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"field":   newInputField,
		"choices": newRadioGroup,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templates, "templates/*.html"))
}

// choice is one option of a radio group.
type choice struct {
	Value string
	Label string
}

var (
	genderChoices        = makeChoices(model.Genders)
	maritalStatusChoices = makeChoices(model.MaritalStatuses)
)

func makeChoices[T interface {
	~string
	Label() string
}](values []T) []choice {
	choices := make([]choice, 0, len(values))
	for _, v := range values {
		choices = append(choices, choice{Value: string(v), Label: v.Label()})
	}
	return choices
}

// formPage is the data of form.html. Values holds what the user submitted, Errors the reasons
// for rejected fields.
type formPage struct {
	Title           string
	Flash           *flash.Message
	Values          map[string]string
	Errors          validation.FieldErrors
	Genders         []choice
	MaritalStatuses []choice
}

type inputField struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
}

func newInputField(page formPage, name, label, kind, placeholder string) inputField {
	return inputField{
		Name:        name,
		Label:       label,
		Type:        kind,
		Placeholder: placeholder,
		Value:       page.Values[name],
		Error:       page.Errors[name],
	}
}

type radioGroup struct {
	Name    string
	Label   string
	Choices []choice
	Value   string
	Error   string
}

func newRadioGroup(page formPage, name, label string, choices []choice) radioGroup {
	return radioGroup{
		Name:    name,
		Label:   label,
		Choices: choices,
		Value:   page.Values[name],
		Error:   page.Errors[name],
	}
}

type recordsPage struct {
	Title   string
	Flash   *flash.Message
	Records []model.Record
}

type errorPage struct {
	Title   string
	Flash   *flash.Message
	Message string
}

func newFormPage(values map[string]string, errs validation.FieldErrors, message *flash.Message) formPage {
	return formPage{
		Title:           "Inquiry Form",
		Flash:           message,
		Values:          values,
		Errors:          errs,
		Genders:         genderChoices,
		MaritalStatuses: maritalStatusChoices,
	}
}

// showForm renders the empty inquiry form.
//
//	> curl http://localhost:8080/
func (h *handler) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", newFormPage(nil, nil, h.flasher.Pop(c)))
}

// submitForm validates and stores the posted inquiry. On success the client is redirected to the
// record list, otherwise the form is rendered again together with the reasons for the rejection.
//
//	> curl http://localhost:8080/ --include --data "first_name=Ann&last_name=Lee&phone=5551234567&email=ann@example.com&gender=female&marital_status=single"
func (h *handler) submitForm(c *gin.Context) {
	fields := make(map[string]string, len(validation.FieldNames))
	for _, name := range validation.FieldNames {
		fields[name] = c.PostForm(name)
	}

	record, err := h.inquiries.Submit(c.Request.Context(), fields)
	var fieldErrors validation.FieldErrors
	switch {
	case err == nil:
		h.metrics.IncrementSubmissions(metrics.OutcomeCreated)
		requestLog(c).WithField("unique_number", record.UniqueNumber).Info("inquiry submitted")
		if err := h.flasher.Set(c, flash.Success, messageSubmitted); err != nil {
			requestLog(c).WithError(err).Warn("could not set flash message")
		}
		c.Redirect(http.StatusSeeOther, "/records/")
	case errors.As(err, &fieldErrors):
		h.metrics.IncrementSubmissions(metrics.OutcomeInvalid)
		requestLog(c).WithField("fields", fieldErrors).Debug("inquiry rejected")
		c.HTML(http.StatusOK, "form.html",
			newFormPage(fields, fieldErrors, &flash.Message{Level: flash.Error, Text: messageCorrect}))
	case errors.Is(err, storage.ErrDuplicateUniqueNumber):
		h.metrics.IncrementSubmissions(metrics.OutcomeCollision)
		requestLog(c).WithError(err).Warn("unique number collision")
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", messageNotSaved)
	default:
		h.metrics.IncrementSubmissions(metrics.OutcomeFailed)
		requestLog(c).WithError(err).Error("could not store inquiry")
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", messageNotSaved)
	}
}

// listRecords responds with all records, newest first. Browsers get the HTML table, clients that
// ask for JSON get a list of records.
//
//	> curl http://localhost:8080/records/ --header "Accept: application/json"
func (h *handler) listRecords(c *gin.Context) {
	records, err := h.inquiries.List(c.Request.Context())
	if err != nil {
		requestLog(c).WithError(err).Error("could not list records")
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", "The records could not be loaded.")
		return
	}
	h.metrics.IncrementListings()

	views := make([]pkgmodel.Record, 0, len(records))
	for _, r := range records {
		views = append(views, r.View())
	}
	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: "records.html",
		HTMLData: recordsPage{Title: "Saved Records", Flash: h.flasher.Pop(c), Records: records},
		JSONData: views,
	})
}

func (h *handler) notFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "Page not found", "There is no page at "+c.Request.URL.Path+".")
}

func (h *handler) renderError(c *gin.Context, status int, title, message string) {
	c.HTML(status, "error.html", errorPage{Title: title, Message: message})
}
