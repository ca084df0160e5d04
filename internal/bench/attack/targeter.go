package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"qrgen/internal/middleware"
)

// runID keeps fresh URLs unique across bench runs against the same database.
var runID = strconv.FormatInt(time.Now().UnixNano(), 36)

func jsonHeader(bypassSecret string) http.Header {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(middleware.BypassHeader, bypassSecret)
	}
	return header
}

// GenerateTargeter posts a URL nobody has generated yet, so every hit renders an image.
func GenerateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	var counter atomic.Uint64
	header := jsonHeader(bypassSecret)
	target := baseURL + "/generate"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = target
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"url":"https://bench.example.com/%s/%d"}`, runID, counter.Add(1))
		return nil
	}
}

// RepeatTargeter posts already generated URLs, exercising the history-hit path.
func RepeatTargeter(baseURL string, urls []string, bypassSecret string) vegeta.Targeter {
	header := jsonHeader(bypassSecret)
	target := baseURL + "/generate"

	bodies := make([][]byte, len(urls))
	for i, u := range urls {
		bodies[i] = fmt.Appendf(nil, `{"url":%q}`, u)
	}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = target
		t.Header = header
		t.Body = bodies[rand.IntN(len(bodies))]
		return nil
	}
}

func HistoryTargeter(baseURL string) vegeta.Targeter {
	target := baseURL + "/history"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = target
		t.Header = nil
		t.Body = nil
		return nil
	}
}

// MixedTargeter splits traffic between fresh generations (newRatio), history reads
// (historyRatio) and repeated generations (the remainder).
func MixedTargeter(baseURL string, urls []string, newRatio, historyRatio float64, bypassSecret string) vegeta.Targeter {
	generate := GenerateTargeter(baseURL, bypassSecret)
	history := HistoryTargeter(baseURL)
	repeat := RepeatTargeter(baseURL, urls, bypassSecret)

	return func(t *vegeta.Target) error {
		switch r := rand.Float64(); {
		case r < newRatio:
			return generate(t)
		case r < newRatio+historyRatio:
			return history(t)
		default:
			return repeat(t)
		}
	}
}
