package health

import (
	"net/http"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	"github.com/Financial-Times/service-status-go/gtg"
)

const HealthPath = "/__health"

type unirefAPI interface {
	ConnectivityCheck() error
}

type HealthCheck struct {
	appSystemCode  string
	appName        string
	appDescription string
	uniref         unirefAPI
}

func NewHealthCheck(appSystemCode string, appName string, appDescription string, api unirefAPI) *HealthCheck {
	return &HealthCheck{
		appSystemCode:  appSystemCode,
		appName:        appName,
		appDescription: appDescription,
		uniref:         api,
	}
}

func (h *HealthCheck) Health() func(w http.ResponseWriter, r *http.Request) {
	hc := fthealth.HealthCheck{
		SystemCode:  h.appSystemCode,
		Name:        h.appName,
		Description: h.appDescription,
		Checks:      h.Checks(),
	}
	return fthealth.Handler(hc)
}

func (h *HealthCheck) Checks() []fthealth.Check {
	return []fthealth.Check{h.unirefAPICheck()}
}

func (h *HealthCheck) unirefAPICheck() fthealth.Check {
	return fthealth.Check{
		ID:               "uniref-api-reachable",
		Name:             "UniRef REST API Reachable",
		Severity:         2,
		BusinessImpact:   "Feature annotations can't be retrieved from UniRef. Annotation lists shown to users will be empty.",
		TechnicalSummary: "The UniRef REST search endpoint is not reachable/healthy",
		PanicGuide:       "https://github.com/amnona/uniref-annotations",
		Checker:          h.checkUnirefAPIConnectivity,
	}
}

func (h *HealthCheck) GTG() gtg.Status {
	apiCheck := func() gtg.Status {
		return gtgCheck(h.checkUnirefAPIConnectivity)
	}

	return gtg.FailFastParallelCheck([]gtg.StatusChecker{
		apiCheck,
	})()
}

func gtgCheck(handler func() (string, error)) gtg.Status {
	if _, err := handler(); err != nil {
		return gtg.Status{GoodToGo: false, Message: err.Error()}
	}
	return gtg.Status{GoodToGo: true}
}

func (h *HealthCheck) checkUnirefAPIConnectivity() (string, error) {
	if err := h.uniref.ConnectivityCheck(); err != nil {
		return "Error connecting to the UniRef REST API", err
	}
	return "Successfully connected to the UniRef REST API", nil
}
