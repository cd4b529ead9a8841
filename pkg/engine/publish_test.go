package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/engine/mocks"
	_ "pondlink.io/starterbox-settings-service/pkg/testing"
)

func TestResolveGatewayTitleFirstNonEmptyWins(t *testing.T) {
	title, err := ResolveGatewayTitle("", "gw-from-prop", "gw-default")
	assert.NoError(t, err)
	assert.Equal(t, "gw-from-prop", title)

	title, err = ResolveGatewayTitle("", "", "gw-default")
	assert.NoError(t, err)
	assert.Equal(t, "gw-default", title)

	_, err = ResolveGatewayTitle("", "")
	assert.ErrorIs(t, err, ErrNoGatewayTitle)
}

func TestConfigTopic(t *testing.T) {
	assert.Equal(t, "gateways/gw-main/devices/config", ConfigTopic("gw-main"))
}

func TestPublishThenPersistOrdering(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().IsConnected().Return(true)
	pub.EXPECT().Publish("gateways/gw/devices/config", QoSAtMostOnce, false, gomock.Any()).Return(nil)

	persisted := 0
	err := PublishAndPersist(pub, "dev-1", "gateways/gw/devices/config", []byte("{}"), func() error {
		persisted++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, persisted)
}

func TestPublishFailureSkipsPersistence(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().IsConnected().Return(true)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable"))

	persisted := 0
	err := PublishAndPersist(pub, "dev-1", "gateways/gw/devices/config", []byte("{}"), func() error {
		persisted++
		return nil
	})
	assert.Error(t, err)
	assert.Equal(t, 0, persisted)
}

func TestNotConnectedSkipsEverything(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().IsConnected().Return(false)

	err := PublishAndPersist(pub, "dev-1", "gateways/gw/devices/config", []byte("{}"), func() error {
		t.Fatal("persist must not run when not connected")
		return nil
	})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestPersistFailureIsReportedAfterPublish(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().IsConnected().Return(true)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := PublishAndPersist(pub, "dev-1", "gateways/gw/devices/config", []byte("{}"), func() error {
		return errors.New("store down")
	})
	assert.ErrorIs(t, err, ErrPersist)
}
