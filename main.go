package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/server"
	"github.com/iredun/ha-gismeteo/settings"
	"github.com/iredun/ha-gismeteo/systems"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/flow"
	"github.com/iredun/ha-gismeteo/systems/gismeteo"
	"github.com/iredun/ha-gismeteo/systems/integration"
	"github.com/iredun/ha-gismeteo/systems/registry"
	"github.com/iredun/ha-gismeteo/systems/state"
	"github.com/jessevdk/go-flags"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		os.Exit(1)
	}

	s, err := settings.Load(options)
	if err != nil {
		panic(err)
	}

	log := s.SystemLogger()
	log.Info("Starting gismeteo integration")

	store, err := entries.NewStore(&entries.ConstructStore{
		Logger: s.PluginLogger("entries", "yaml"),
		File:   s.EntriesFile(),
	})
	if err != nil {
		log.Fatal("Failed to load config entries", err, common.LogFileToken, s.EntriesFile())
	}

	client := gismeteo.NewClient(&gismeteo.ConstructClient{
		Settings: s.GismeteoSettings(),
		Logger:   s.PluginLogger(systems.SysGismeteo.String(), "api"),
	})

	reg := registry.NewRegistry(s.LegacyLocations())
	st := state.NewRegistry(&state.ConstructRegistry{
		Logger: s.PluginLogger("state", common.Domain),
		FanOut: s.FanOut(),
	})

	integ := integration.NewIntegration(&integration.ConstructIntegration{
		Settings: s,
		Client:   client,
		Store:    store,
		Registry: reg,
		State:    st,
	})

	flows := flow.NewManager(&flow.ConstructManager{
		Logger:    s.PluginLogger("flow", common.Domain),
		Validator: s.Validator(),
		Home:      s.HomeLocation(),
		Client:    client,
		Store:     store,
	})

	srv, err := server.NewServer(&server.ConstructServer{
		Settings:    s,
		Store:       store,
		State:       st,
		Integration: integ,
		Flows:       flows,
		Options: flow.NewOptionsManager(&flow.ConstructOptionsManager{
			Logger: s.PluginLogger("options", common.Domain),
			Store:  store,
		}),
	})
	if err != nil {
		log.Fatal("Failed to create server", err)
	}

	srv.Start()

	go func() {
		sl := s.ServerSettings().DelayedStart
		if sl > 0 {
			time.Sleep(time.Duration(sl) * time.Second)
		}

		ctx := context.Background()
		if err := integ.ImportLegacy(ctx, flows); err != nil {
			log.Error("Failed to import legacy configuration", err)
		}

		integ.SetupAll(ctx)
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Received stop command, exiting")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Failed to stop server", err)
	}

	integ.Stop()
	s.Cron().Stop()
	if fo, ok := s.FanOut().(providers.IInternalFanOutProvider); ok {
		fo.Stop()
	}
	log.Flush()
}
