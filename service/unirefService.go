package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/Financial-Times/go-logger"

	"github.com/amnona/uniref-annotations/browser"
	"github.com/amnona/uniref-annotations/database"
)

const (
	// DefaultAPIURL is the UniRef REST API base used when none is configured.
	DefaultAPIURL = "https://rest.uniprot.org/uniref/"
	// DefaultPageURL is the UniRef entry page base used when none is configured.
	DefaultPageURL = "https://www.uniprot.org/uniref/"
)

const serviceName = "uniref"

const queryFailedFormat = "uniref query failed. code %d"

// connectivityProbe is a known cluster ID queried by the health check.
const connectivityProbe = "UniRef90_A0A174LDE8"

const connectivityTimeout = 10 * time.Second

// UnirefService annotates features with metadata from the UniRef
// protein-family REST API. It declares only the get capability.
type UnirefService struct {
	apiURL   string
	pageURL  string
	client   *http.Client
	launcher browser.Launcher
}

// NewUnirefService binds the adapter to its collaborators. Every argument is
// optional: zero values fall back to the public UniRef endpoints, the default
// HTTP client and the default browser.
func NewUnirefService(apiURL string, pageURL string, client *http.Client, launcher browser.Launcher) *UnirefService {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if pageURL == "" {
		pageURL = DefaultPageURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if launcher == nil {
		launcher = browser.DefaultLauncher{}
	}

	log.Debugf("uniref database interface initialized, api=%s", apiURL)

	return &UnirefService{apiURL: apiURL, pageURL: pageURL, client: client, launcher: launcher}
}

func (s *UnirefService) Name() string {
	return serviceName
}

func (s *UnirefService) Capabilities() []database.Capability {
	return []database.Capability{database.CapabilityGet}
}

// GetAnnotationStrings returns display summaries for a UniRef cluster ID
// (i.e. "UniRef90_A0A174LDE8"): the identifier echo first, then a name line
// per search result and an organism line per organism of that result, in the
// order UniRef returns them.
//
// A non-200 response from UniRef is reported as an extra summary line, not an
// error. Transport and decode failures are returned to the caller together
// with the entries accumulated so far.
func (s *UnirefService) GetAnnotationStrings(feature string) ([]database.AnnotationEntry, error) {
	shortdesc := []database.AnnotationEntry{{
		Detail: database.AnnotationDetail{
			database.DetailKeyUnirefID:       feature,
			database.DetailKeyAnnotationType: database.AnnotationTypeOther,
		},
		Summary: feature,
	}}

	res, err := s.client.Get(s.apiURL + "search?query=" + url.QueryEscape(feature))
	if err != nil {
		return shortdesc, fmt.Errorf("uniref search query %v: %v", feature, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.WithField("unirefId", feature).Warnf(queryFailedFormat, res.StatusCode)
		shortdesc = append(shortdesc, summaryEntry(fmt.Sprintf(queryFailedFormat, res.StatusCode)))
		return shortdesc, nil
	}

	var search searchResponse
	if err = json.NewDecoder(res.Body).Decode(&search); err != nil {
		return shortdesc, fmt.Errorf("decode uniref search results %v: %v", feature, err)
	}

	for _, result := range search.Results {
		shortdesc = append(shortdesc, summaryEntry("name: "+result.Name))
		for _, org := range result.Organisms {
			shortdesc = append(shortdesc, summaryEntry("organism: "+org.ScientificName))
		}
	}

	return shortdesc, nil
}

// ShowAnnotationInfo opens the UniRef entry page for the given feature
// identifier in the browser. The page URL is the configured base with the
// identifier appended verbatim.
func (s *UnirefService) ShowAnnotationInfo(annotation string) error {
	return s.launcher.Open(s.pageURL + annotation)
}

// ConnectivityCheck probes the UniRef search endpoint with a known cluster
// ID. It uses its own short-timeout client so health endpoints cannot hang on
// the adapter's unbounded default transport.
func (s *UnirefService) ConnectivityCheck() error {
	client := &http.Client{Timeout: connectivityTimeout}

	res, err := client.Get(s.apiURL + "search?query=" + url.QueryEscape(connectivityProbe) + "&size=1")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("uniref API returned HTTP status %d", res.StatusCode)
	}
	return nil
}

func summaryEntry(summary string) database.AnnotationEntry {
	return database.AnnotationEntry{
		Detail:  database.AnnotationDetail{database.DetailKeyAnnotationType: database.AnnotationTypeOther},
		Summary: summary,
	}
}
