package observability

import "testing"

func TestNormalizeOTLPHTTPPath(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		endpoint string
		suffix   string
		want     string
		wantErr  bool
	}{
		{
			name:     "no path appends suffix",
			endpoint: "https://collector:4318",
			suffix:   "/v1/metrics",
			want:     "https://collector:4318/v1/metrics",
		},
		{
			name:     "existing prefix gets suffix",
			endpoint: "https://example.com/otlp",
			suffix:   "/v1/traces",
			want:     "https://example.com/otlp/v1/traces",
		},
		{
			name:     "trailing slash normalized",
			endpoint: "https://example.com/otlp/",
			suffix:   "/v1/traces",
			want:     "https://example.com/otlp/v1/traces",
		},
		{
			name:     "suffix already present",
			endpoint: "https://example.com/otlp/v1/traces",
			suffix:   "/v1/traces",
			want:     "https://example.com/otlp/v1/traces",
		},
		{
			name:     "query string preserved",
			endpoint: "https://example.com/otlp?token=abc",
			suffix:   "/v1/metrics",
			want:     "https://example.com/otlp/v1/metrics?token=abc",
		},
		{
			name:     "empty endpoint rejected",
			endpoint: "   ",
			suffix:   "/v1/traces",
			wantErr:  true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeOTLPHTTPPath(tc.endpoint, tc.suffix)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeOTLPHTTPPath: %v", err)
			}
			if got != tc.want {
				t.Errorf("normalizeOTLPHTTPPath() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseGRPCEndpoint(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		endpoint     string
		wantHost     string
		wantInsecure bool
		wantErr      bool
	}{
		{"bare host port", "collector:4317", "collector:4317", true, false},
		{"http scheme", "http://collector:4317", "collector:4317", true, false},
		{"https scheme", "https://collector:4317", "collector:4317", false, false},
		{"grpc scheme", "grpc://collector:4317", "collector:4317", true, false},
		{"unsupported scheme", "ftp://collector:4317", "", false, true},
		{"empty", "", "", false, true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			host, insecure, err := parseGRPCEndpoint(tc.endpoint)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseGRPCEndpoint: %v", err)
			}
			if host != tc.wantHost {
				t.Errorf("host = %q, want %q", host, tc.wantHost)
			}
			if insecure != tc.wantInsecure {
				t.Errorf("insecure = %v, want %v", insecure, tc.wantInsecure)
			}
		})
	}
}
