package main

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/handlers"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "paypal.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		return
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting paypal.api.ch.gov.uk service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal.api.ch.gov.uk service")
}
