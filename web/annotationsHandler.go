package web

import (
	"encoding/json"
	"net/http"
	"strings"

	log "github.com/Financial-Times/go-logger"
	"github.com/google/uuid"

	"github.com/amnona/uniref-annotations/database"
)

// AnnotationsPath is the prefix the handler expects to be mounted on.
const AnnotationsPath = "/annotations/"

type annotationsFetcher interface {
	GetAnnotationStrings(feature string) ([]database.AnnotationEntry, error)
}

// FeatureAnnotations models the response body for a feature lookup.
type FeatureAnnotations struct {
	UnirefID    string                     `json:"unirefId"`
	Annotations []database.AnnotationEntry `json:"annotations"`
}

// AnnotationsHandler serves annotation strings for a feature over HTTP, for
// hosts that integrate with the adapter over the network rather than in
// process.
type AnnotationsHandler struct {
	fetcher annotationsFetcher
}

func NewAnnotationsHandler(fetcher annotationsFetcher) *AnnotationsHandler {
	return &AnnotationsHandler{fetcher}
}

func (h *AnnotationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "only GET is supported", http.StatusMethodNotAllowed)
		return
	}

	tid := r.Header.Get("X-Request-Id")
	if tid == "" {
		tid = uuid.New().String()
	}
	requestLog := log.WithTransactionID(tid)

	feature := strings.TrimPrefix(r.URL.Path, AnnotationsPath)
	if feature == "" || strings.Contains(feature, "/") {
		http.Error(w, "missing or invalid feature identifier", http.StatusBadRequest)
		return
	}

	annotations, err := h.fetcher.GetAnnotationStrings(feature)
	if err != nil {
		requestLog.WithField("unirefId", feature).WithError(err).Error("Annotation lookup failed")
		http.Error(w, "uniref lookup failed", http.StatusBadGateway)
		return
	}

	requestLog.WithField("unirefId", feature).Infof("Returning %d annotation strings", len(annotations))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", tid)
	if err = json.NewEncoder(w).Encode(FeatureAnnotations{UnirefID: feature, Annotations: annotations}); err != nil {
		requestLog.WithField("unirefId", feature).WithError(err).Error("Error writing annotations response")
	}
}
