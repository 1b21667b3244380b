// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/profiler"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
	"github.com/Boychill/frotendTiendaAppMovil/internal/viewstate"
)

const (
	port               = "8080"
	defaultSessionFile = "user_prefs.json"
)

// storefront binds the screen handlers to their view-state holders.
type storefront struct {
	sessions session.Store

	login        *viewstate.Login
	register     *viewstate.Register
	catalog      *viewstate.Catalog
	cart         *viewstate.Cart
	inventory    *viewstate.Inventory
	adminOrders  *viewstate.AdminOrders
	clientOrders *viewstate.ClientOrders
	profile      *viewstate.Profile
	addProduct   *viewstate.AddProduct
	editProduct  *viewstate.EditProduct
}

func main() {
	ctx := context.Background()
	log := logrus.New()
	log.Level = logrus.DebugLevel
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	loadEnv(log)

	if os.Getenv("ENABLE_TRACING") == "1" {
		log.Info("Tracing enabled.")
		initTracing(log, ctx)
	} else {
		log.Info("Tracing disabled.")
	}

	if os.Getenv("ENABLE_PROFILER") == "1" {
		log.Info("Profiling enabled.")
		go initProfiling(log, "storefront", "1.0.0")
	} else {
		log.Info("Profiling disabled.")
	}

	srvPort := port
	if os.Getenv("PORT") != "" {
		srvPort = os.Getenv("PORT")
	}
	addr := os.Getenv("LISTEN_ADDR")

	var gatewayAddr string
	mustMapEnv(&gatewayAddr, "GATEWAY_ADDR")

	sessions, err := newSessionStore(log)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	client := api.New("http://"+gatewayAddr, sessions)

	auth := repository.NewAuth(client, sessions)
	products := repository.NewProducts(client)
	orders := repository.NewOrders(client)
	profile := repository.NewProfile(client)
	cart := repository.NewCart()

	svc := &storefront{
		sessions:     sessions,
		login:        viewstate.NewLogin(auth),
		register:     viewstate.NewRegister(auth),
		catalog:      viewstate.NewCatalog(products, auth, sessions),
		cart:         viewstate.NewCart(cart, orders, profile, log),
		inventory:    viewstate.NewInventory(products),
		adminOrders:  viewstate.NewAdminOrders(orders),
		clientOrders: viewstate.NewClientOrders(orders),
		profile:      viewstate.NewProfile(profile),
		addProduct:   viewstate.NewAddProduct(products),
		editProduct:  viewstate.NewEditProduct(products),
	}

	r := mux.NewRouter()
	r.HandleFunc("/login", svc.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/register", svc.registerHandler).Methods(http.MethodPost)
	r.HandleFunc("/logout", svc.logoutHandler).Methods(http.MethodPost)
	r.HandleFunc("/menu", svc.menuHandler).Methods(http.MethodGet)
	r.HandleFunc("/catalogo", svc.catalogHandler).Methods(http.MethodGet)
	r.HandleFunc("/cart", svc.viewCartHandler).Methods(http.MethodGet)
	r.HandleFunc("/cart", svc.addToCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/remove", svc.removeFromCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/empty", svc.emptyCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/address", svc.cartAddressHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/location", svc.cartLocationHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/addresses", svc.cartSavedAddressesHandler).Methods(http.MethodGet)
	r.HandleFunc("/cart/checkout", svc.checkoutHandler).Methods(http.MethodPost)
	r.HandleFunc("/client/orders", svc.clientOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/client/profile", svc.profileHandler).Methods(http.MethodGet)
	r.HandleFunc("/client/profile", svc.updateProfileHandler).Methods(http.MethodPost)
	r.HandleFunc("/client/profile/addresses", svc.saveAddressHandler).Methods(http.MethodPost)
	r.HandleFunc("/client/profile/addresses/{id}/delete", svc.deleteAddressHandler).Methods(http.MethodPost)
	r.HandleFunc("/admin/inventory", svc.inventoryHandler).Methods(http.MethodGet)
	r.HandleFunc("/admin/inventory/{id}/stock", svc.updateStockHandler).Methods(http.MethodPost)
	r.HandleFunc("/admin/inventory/{id}/delete", svc.deleteProductHandler).Methods(http.MethodPost)
	r.HandleFunc("/admin/orders", svc.adminOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/admin/orders/{id}/status", svc.updateOrderStatusHandler).Methods(http.MethodPost)
	r.HandleFunc("/admin/add-product", svc.addProductHandler).Methods(http.MethodPost)
	r.HandleFunc("/admin/edit-product/{productId}", svc.editProductFormHandler).Methods(http.MethodGet)
	r.HandleFunc("/admin/edit-product/{productId}", svc.editProductHandler).Methods(http.MethodPost)
	r.HandleFunc("/_healthz", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "ok") })

	var handler http.Handler = r
	handler = &logHandler{log: log, next: handler}       // add logging
	handler = otelhttp.NewHandler(handler, "storefront") // add OTel tracing

	log.Infof("starting server on %s:%s", addr, srvPort)
	log.Fatal(http.ListenAndServe(addr+":"+srvPort, handler))
}

// loadEnv pulls .env.local into the environment for local runs.
func loadEnv(log *logrus.Logger) {
	if os.Getenv("APP_ENV") == "local" {
		if err := godotenv.Load(".env.local"); err != nil {
			log.Warnf(".env.local not found: %v, relying on system environment", err)
		}
	}
}

// newSessionStore picks the redis backend when REDIS_ADDR is set and falls
// back to the JSON preferences file otherwise.
func newSessionStore(log *logrus.Logger) (session.Store, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Infof("using redis session store at %s", addr)
		return session.NewRedisStore(addr)
	}
	path := os.Getenv("SESSION_FILE")
	if path == "" {
		path = defaultSessionFile
	}
	log.Infof("using file session store at %s", path)
	return session.NewFileStore(path)
}

func initTracing(log logrus.FieldLogger, ctx context.Context) (*sdktrace.TracerProvider, error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{}))
	log.Info("Tracing provider initialized (no exporter configured)")
	return tp, nil
}

func initProfiling(log logrus.FieldLogger, service, version string) {
	for i := 1; i <= 3; i++ {
		log = log.WithField("retry", i)
		if err := profiler.Start(profiler.Config{
			Service:        service,
			ServiceVersion: version,
			// ProjectID must be set if not running on GCP.
		}); err != nil {
			log.Warnf("warn: failed to start profiler: %+v", err)
		} else {
			log.Info("started Stackdriver profiler")
			return
		}
		d := time.Second * 10 * time.Duration(i)
		log.Debugf("sleeping %v to retry initializing Stackdriver profiler", d)
		time.Sleep(d)
	}
	log.Warn("warning: could not initialize Stackdriver profiler after retrying, giving up")
}

func mustMapEnv(target *string, envKey string) {
	v := os.Getenv(envKey)
	if v == "" {
		panic(fmt.Sprintf("environment variable %q not set", envKey))
	}
	*target = v
}
