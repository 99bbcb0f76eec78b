package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/parseaddr/pkg/config"
	"github.com/parseaddr/pkg/countries"
	"github.com/parseaddr/pkg/parser"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting address parser server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("cors", cfg.Security.EnableCORS),
		zap.Int("rate_limit_per_min", cfg.Security.RateLimitPerMin),
		zap.Int("max_input_length", cfg.Security.MaxInputLength),
		zap.Strings("countries", countries.Supported()),
	)

	cache, err := lru.New[string, []*parser.Address](cfg.Parser.CacheSize)
	if err != nil {
		logger.Fatal("failed to build parse cache", zap.Error(err))
	}

	srvState := &server{cfg: cfg, logger: logger, cache: cache}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/parse", srvState.parseHandler).Methods("POST", "OPTIONS")
	api.HandleFunc("/health", srvState.healthHandler).Methods("GET")
	api.HandleFunc("/config", srvState.configHandler).Methods("GET")

	r.HandleFunc("/", indexHandler).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	handler := loggingMiddleware(logger, r)
	handler = corsMiddleware(cfg, handler)
	handler = securityHeadersMiddleware(handler)
	handler = requestSizeLimitMiddleware(cfg.Server.MaxRequestSize, handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

type server struct {
	cfg    *config.Config
	logger *zap.Logger
	cache  *lru.Cache[string, []*parser.Address]
}

// Handlers

type parseRequest struct {
	Address string `json:"address"`
	Country string `json:"country,omitempty"`
}

type parseResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Addresses []*parser.Address `json:"addresses,omitempty"`
}

func (s *server) parseHandler(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, parseResponse{Success: false, Error: "invalid request format"})
		return
	}

	if req.Address == "" {
		respondJSON(w, http.StatusBadRequest, parseResponse{Success: false, Error: "address field is required"})
		return
	}

	country := req.Country
	if country == "" {
		country = s.cfg.Parser.DefaultCountry
	}

	sanitized, err := parser.ValidateAndSanitize(req.Address)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, parseResponse{Success: false, Error: err.Error()})
		return
	}

	cacheKey := country + "\x00" + sanitized
	if cached, ok := s.cache.Get(cacheKey); ok {
		respondJSON(w, http.StatusOK, parseResponse{Success: true, Addresses: cached})
		return
	}

	addrs, err := parser.Parse(sanitized, country)
	if err != nil {
		s.logger.Warn("parse failed", zap.String("country", country), zap.Error(err))
		respondJSON(w, http.StatusBadRequest, parseResponse{Success: false, Error: err.Error()})
		return
	}

	s.cache.Add(cacheKey, addrs)
	respondJSON(w, http.StatusOK, parseResponse{Success: true, Addresses: addrs})
}

func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *server) configHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"maxInputLength": s.cfg.Security.MaxInputLength,
		"corsEnabled":    s.cfg.Security.EnableCORS,
		"defaultCountry": s.cfg.Parser.DefaultCountry,
		"countries":      countries.Supported(),
	})
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// Middleware

func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func corsMiddleware(cfg *config.Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.Security.EnableCORS {
			origin := r.Header.Get("Origin")
			if origin == "" {
				origin = "*"
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'")
		next.ServeHTTP(w, r)
	})
}

func requestSizeLimitMiddleware(maxSize int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		next.ServeHTTP(w, r)
	})
}

// Utilities

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Embedded HTML for the web interface
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Address Parser - Testing Interface</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
            overflow: hidden;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            text-align: center;
        }
        .header h1 { font-size: 32px; margin-bottom: 10px; }
        .header p { opacity: 0.9; }
        .main { padding: 30px; }
        .input-section {
            background: #f7fafc;
            padding: 25px;
            border-radius: 8px;
            margin-bottom: 25px;
        }
        label {
            display: block;
            font-weight: 600;
            margin-bottom: 8px;
            color: #2d3748;
        }
        textarea, select, input {
            width: 100%;
            padding: 12px;
            border: 2px solid #e2e8f0;
            border-radius: 6px;
            font-size: 16px;
            font-family: inherit;
            transition: border-color 0.2s;
        }
        textarea:focus, select:focus, input:focus {
            outline: none;
            border-color: #667eea;
        }
        textarea { min-height: 100px; resize: vertical; }
        .button-group {
            display: flex;
            gap: 10px;
            margin-top: 15px;
        }
        button {
            flex: 1;
            padding: 14px 24px;
            border: none;
            border-radius: 6px;
            font-size: 16px;
            font-weight: 600;
            cursor: pointer;
            transition: all 0.2s;
        }
        .btn-primary {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }
        .btn-primary:hover { transform: translateY(-2px); box-shadow: 0 4px 12px rgba(102, 126, 234, 0.4); }
        .btn-secondary {
            background: #e2e8f0;
            color: #2d3748;
        }
        .btn-secondary:hover { background: #cbd5e0; }
        .results {
            background: #f7fafc;
            border-radius: 8px;
            padding: 20px;
            margin-top: 20px;
        }
        .results h2 {
            color: #2d3748;
            margin-bottom: 15px;
            font-size: 20px;
        }
        .result-card {
            background: white;
            border-radius: 6px;
            padding: 15px;
            margin-bottom: 10px;
            border-left: 4px solid #667eea;
        }
        .result-item {
            display: flex;
            padding: 8px 0;
            border-bottom: 1px solid #e2e8f0;
        }
        .result-item:last-child { border-bottom: none; }
        .result-label {
            font-weight: 600;
            color: #4a5568;
            width: 150px;
        }
        .result-value {
            color: #2d3748;
            flex: 1;
        }
        .examples {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 15px;
            margin-top: 20px;
        }
        .example-card {
            background: white;
            padding: 15px;
            border-radius: 6px;
            border: 2px solid #e2e8f0;
            cursor: pointer;
            transition: all 0.2s;
        }
        .example-card:hover {
            border-color: #667eea;
            transform: translateY(-2px);
            box-shadow: 0 4px 12px rgba(0,0,0,0.1);
        }
        .example-title {
            font-weight: 600;
            color: #667eea;
            margin-bottom: 5px;
        }
        .example-text {
            color: #4a5568;
            font-size: 14px;
        }
        .error {
            background: #fed7d7;
            color: #9b2c2c;
            padding: 15px;
            border-radius: 6px;
            margin-top: 15px;
        }
        .success {
            background: #c6f6d5;
            color: #22543d;
            padding: 15px;
            border-radius: 6px;
            margin-top: 15px;
        }
        .badge {
            display: inline-block;
            padding: 4px 12px;
            border-radius: 12px;
            font-size: 12px;
            font-weight: 600;
            text-transform: uppercase;
            background: #bee3f8;
            color: #2c5282;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Address Parser</h1>
            <p>Secure, validated address parsing with live testing interface</p>
        </div>
        <div class="main">
            <div class="input-section">
                <label for="address">Enter Address</label>
                <textarea id="address" placeholder="1005 N Gravenstein Highway Sebastopol CA 95472"></textarea>

                <label for="country" style="margin-top: 15px;">Country</label>
                <select id="country">
                    <option value="US">United States</option>
                    <option value="CA">Canada</option>
                </select>

                <div class="button-group">
                    <button class="btn-primary" onclick="parseAddress()">Parse Address</button>
                    <button class="btn-secondary" onclick="clearResults()">Clear</button>
                </div>
            </div>

            <div id="results"></div>

            <div class="results">
                <h2>Example Addresses (click to test)</h2>
                <div class="examples">
                    <div class="example-card" onclick="setAddress('1005 N Gravenstein Highway Sebastopol CA 95472')">
                        <div class="example-title">Standard Address</div>
                        <div class="example-text">1005 N Gravenstein Highway Sebastopol CA 95472</div>
                    </div>
                    <div class="example-card" onclick="setAddress('123 Main St Apt 4B San Francisco, CA 94105')">
                        <div class="example-title">With Unit Number</div>
                        <div class="example-text">123 Main St Apt 4B San Francisco, CA 94105</div>
                    </div>
                    <div class="example-card" onclick="setAddress('PO Box 1234 New York NY 10001')">
                        <div class="example-title">PO Box</div>
                        <div class="example-text">PO Box 1234 New York NY 10001</div>
                    </div>
                    <div class="example-card" onclick="setAddress('123 Main St, Toronto, ON M5V 3L9')">
                        <div class="example-title">Canadian Address</div>
                        <div class="example-text">123 Main St, Toronto, ON M5V 3L9</div>
                    </div>
                </div>
            </div>
        </div>
    </div>

    <script>
        function setAddress(addr) {
            document.getElementById('address').value = addr;
            parseAddress();
        }

        function clearResults() {
            document.getElementById('address').value = '';
            document.getElementById('results').innerHTML = '';
        }

        async function parseAddress() {
            const address = document.getElementById('address').value.trim();
            const country = document.getElementById('country').value;
            const resultsDiv = document.getElementById('results');

            if (!address) {
                resultsDiv.innerHTML = '<div class="error">Please enter an address</div>';
                return;
            }

            resultsDiv.innerHTML = '<div class="success">Parsing...</div>';

            try {
                const response = await fetch('/api/v1/parse', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ address, country })
                });

                const data = await response.json();

                if (!data.success) {
                    resultsDiv.innerHTML = '<div class="error">Error: ' + (data.error || 'Unknown error') + '</div>';
                    return;
                }

                displayResults(data.addresses || []);
            } catch (error) {
                resultsDiv.innerHTML = '<div class="error">Network error: ' + error.message + '</div>';
            }
        }

        function displayResults(addresses) {
            const resultsDiv = document.getElementById('results');
            let html = '<div class="results"><h2>Parse Results</h2>';

            if (addresses.length === 0) {
                html += '<div class="error">Could not parse address</div>';
            }

            for (const addr of addresses) {
                html += '<span class="badge">Address</span>';
                html += '<div class="result-card">';
                html += formatResultItem('Street Number', addr.StreetNumber);
                html += formatResultItem('Pre-Direction', addr.PreDirection);
                html += formatResultItem('Street Name', addr.StreetName || addr.TypelessStreetName);
                html += formatResultItem('Street Type', addr.StreetType);
                html += formatResultItem('Post-Direction', addr.PostDirection);
                html += formatResultItem('Occupancy', addr.Occupancy);
                html += formatResultItem('PO Box', addr.POBox);
                html += formatResultItem('City', addr.City);
                html += formatResultItem('Region', addr.Region1);
                html += formatResultItem('Postal Code', addr.PostalCode);
                html += formatResultItem('Country', addr.Country);
                html += '</div>';
            }

            html += '</div>';
            resultsDiv.innerHTML = html;
        }

        function formatResultItem(label, value) {
            if (!value) return '';
            return '<div class="result-item"><div class="result-label">' + label + ':</div><div class="result-value">' + value + '</div></div>';
        }

        document.getElementById('address').addEventListener('keypress', function(e) {
            if (e.key === 'Enter' && !e.shiftKey) {
                e.preventDefault();
                parseAddress();
            }
        });
    </script>
</body>
</html>`
