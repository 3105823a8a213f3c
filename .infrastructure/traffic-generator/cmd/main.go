package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Запросы к order-service по операции и коду ответа",
	}, []string{"operation", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса к order-service в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"operation"})
)

// совпадают со встроенным каталогом сервиса (CATALOG_STATIC_ENABLED=true)
var vehicles = []string{
	"6f2b0b8d-33f5-4ea0-8e2f-f03b27e4a731",
	"a63f0975-dcbe-44b5-b813-91ed144ba4f5",
	"82d9c3e8-75bd-4a44-9df1-61b2a78653c4",
}

type orderItem struct {
	VehicleID string `json:"vehicleId"`
	Quantity  int    `json:"quantity"`
}

type orderCreate struct {
	CustomerID string      `json:"customerId"`
	Items      []orderItem `json:"items"`
}

type order struct {
	ID string `json:"id"`
}

type generator struct {
	client    *http.Client
	baseURL   string
	customers []string
}

func (g *generator) do(operation, method, url string, body any) (*http.Response, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, g.baseURL+url, &payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(operation, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// simulatePurchase создаёт заказ и случайно либо отправляет его в оплату, либо отменяет.
func (g *generator) simulatePurchase() error {
	items := make([]orderItem, 0, 2)
	for i := 0; i < 1+rand.Intn(2); i++ {
		items = append(items, orderItem{
			VehicleID: vehicles[rand.Intn(len(vehicles))],
			Quantity:  1 + rand.Intn(3),
		})
	}

	resp, err := g.do("create", http.MethodPost, "/orders", orderCreate{
		CustomerID: g.customers[rand.Intn(len(g.customers))],
		Items:      items,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("create order: unexpected status %d", resp.StatusCode)
	}

	var created order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return err
	}

	return g.followUp(created.ID)
}

func (g *generator) followUp(orderID string) error {
	calls := []struct {
		operation, method, url string
	}{
		{"get", http.MethodGet, "/orders/" + orderID},
		{"payment", http.MethodPost, "/orders/" + orderID + "/payment"},
	}
	if rand.Intn(5) == 0 {
		calls[1] = struct {
			operation, method, url string
		}{"cancel", http.MethodPut, "/orders/" + orderID + "/status?status=CANCELED"}
	}

	for _, call := range calls {
		resp, err := g.do(call.operation, call.method, call.url, nil)
		if err != nil {
			return err
		}
		resp.Body.Close()
	}
	return nil
}

func main() {
	baseURL := flag.String("target", "http://localhost:8080", "адрес order-service")
	interval := flag.Duration("interval", 2*time.Second, "пауза между заказами")
	customerIDs := flag.String("customers", "", "id покупателей через запятую, известные сервису покупателей")
	flag.Parse()

	customers := strings.FieldsFunc(*customerIDs, func(r rune) bool { return r == ',' })
	if len(customers) == 0 {
		log.Fatal("at least one customer id is required (-customers)")
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil) //nolint:errcheck,gosec

	g := &generator{
		client:    &http.Client{Timeout: 5 * time.Second},
		baseURL:   *baseURL,
		customers: customers,
	}

	for {
		if err := g.simulatePurchase(); err != nil {
			log.Printf("purchase simulation failed: %v", err)
		}
		time.Sleep(*interval)
	}
}
