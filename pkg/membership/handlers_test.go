// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/wisdom-forms/forms-service/pkg/authentication"
)

func TestAPI_WatchProfile_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockBus := NewMockBusInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	api := NewAPI(mockSvc, mockBus, nil, mockLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/profile/watch", nil)
	rec := httptest.NewRecorder()

	api.watchProfile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAPI_WatchProfile_OutlivesWriteDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockBus := NewMockBusInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	notify := make(chan func(), 1)
	mockBus.EXPECT().SubscribeProfile(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string, fn func()) (func(), error) {
			notify <- fn
			return func() {}, nil
		})

	api := NewAPI(mockSvc, mockBus, nil, mockLogger)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			api.watchProfile(w, r.WithContext(authentication.WithUserID(r.Context(), "user-1")))
		}),
		WriteTimeout: 200 * time.Millisecond,
	}
	go server.Serve(listener)
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + listener.Addr().String() + "/api/v0/profile/watch")
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	if got := readEventName(t, reader); got != "ready" {
		t.Fatalf("expected ready event, got %q", got)
	}

	fn := <-notify

	// Outlast the server-wide write deadline before the next event.
	time.Sleep(400 * time.Millisecond)
	fn()

	if got := readEventName(t, reader); got != "change" {
		t.Fatalf("expected change event after the write deadline, got %q", got)
	}
}

func readEventName(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("failed to read event stream: %v", err)
		}
		if strings.HasPrefix(line, "event: ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
		}
	}
}
