package workers

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-local-sync/internal/mock"
)

func TestSyncWorker_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)

	engine.EXPECT().Start()
	engine.EXPECT().SetBackgroundSync(true, 30*time.Second)

	NewSyncWorker(engine, 30*time.Second).Run()
}
