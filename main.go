package main

import (
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	status "github.com/Financial-Times/service-status-go/httphandlers"
	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"

	"github.com/amnona/uniref-annotations/health"
	"github.com/amnona/uniref-annotations/service"
	"github.com/amnona/uniref-annotations/web"
)

const (
	appName        = "UniRef Annotations Adapter"
	appDescription = "Adapter for annotating features with UniRef protein-family metadata"
	appSystemCode  = "uniref-annotations"
)

func main() {
	app := cli.App("uniref-annotations", appDescription)

	port := app.String(cli.StringOpt{
		Name:   "port",
		Value:  "8080",
		Desc:   "Port to listen on",
		EnvVar: "APP_PORT",
	})

	// UniRef endpoints
	apiURL := app.String(cli.StringOpt{
		Name:   "unirefApiUrl",
		Value:  service.DefaultAPIURL,
		Desc:   "Base URL of the UniRef REST API",
		EnvVar: "UNIREF_API_URL",
	})
	pageURL := app.String(cli.StringOpt{
		Name:   "unirefPageUrl",
		Value:  service.DefaultPageURL,
		Desc:   "Base URL of the UniRef entry pages opened in the browser",
		EnvVar: "UNIREF_PAGE_URL",
	})

	requestTimeout := app.Int(cli.IntOpt{
		Name:   "requestTimeout",
		Value:  0,
		Desc:   "Timeout in seconds for UniRef API requests, 0 for the transport default",
		EnvVar: "REQUEST_TIMEOUT",
	})

	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetLevel(log.InfoLevel)
	log.Info("[Startup] uniref-annotations is starting ")

	app.Action = func() {
		log.Infof("System code: %s, App Name: %s, Port: %s", appSystemCode, appName, *port)

		client := &http.Client{Timeout: time.Duration(*requestTimeout) * time.Second}

		uniref := service.NewUnirefService(*apiURL, *pageURL, client, nil)
		annotations := web.NewAnnotationsHandler(uniref)

		serveEndpoints(*port, annotations, uniref)
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Errorf("App could not start, error=[%s]\n", err)
		return
	}
}

func serveEndpoints(port string, annotations http.Handler, uniref *service.UnirefService) {
	healthService := health.NewHealthCheck(appSystemCode, appName, appDescription, uniref)

	serveMux := http.NewServeMux()

	hc := fthealth.HealthCheck{SystemCode: appSystemCode, Name: appName, Description: appDescription, Checks: healthService.Checks()}
	serveMux.HandleFunc(health.HealthPath, fthealth.Handler(hc))
	serveMux.HandleFunc(status.GTGPath, status.NewGoodToGoHandler(healthService.GTG))
	serveMux.HandleFunc(status.BuildInfoPath, status.BuildInfoHandler)
	serveMux.Handle(web.AnnotationsPath, annotations)

	server := &http.Server{Addr: ":" + port, Handler: serveMux}

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Infof("HTTP server closing with message: %v", err)
		}
		wg.Done()
	}()

	waitForSignal()
	log.Infof("[Shutdown] uniref-annotations is shutting down")

	if err := server.Close(); err != nil {
		log.Errorf("Unable to stop http server: %v", err)
	}

	wg.Wait()
}

func waitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
}
