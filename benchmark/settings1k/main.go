package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"pondlink.io/starterbox-settings-service/pkg/client"
	"pondlink.io/starterbox-settings-service/pkg/models"

	"gorm.io/datatypes"
)

var maxDevices int = 2000
var httpHostPort string = "127.0.0.1:1080"

var restClient *client.Client

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	restClient = client.New(fmt.Sprintf("http://%s", httpHostPort))

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			insertSettings(deviceIDs[i])
			insertLimits(deviceIDs[i])
			fmt.Printf("\rseeded device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rseeded %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*2)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func rndSettings() *models.DeviceSettings {
	motors := 1
	if flipCoin() {
		motors = 2
	}

	settings := &models.DeviceSettings{
		SerialNumber:     "SBX-" + uuid.NewString()[:8],
		LowVoltageFault:  rndFloat64(300.0, 360.0, 2),
		HighVoltageFault: rndFloat64(440.0, 480.0, 2),
		FltEn:            1,
		SeedTime:         rndFloat64(0.0, 60.0, 0),
		CapableMotors:    motors,
	}
	for j := 0; j < motors; j++ {
		settings.MotorSpecificLimits = append(settings.MotorSpecificLimits, models.MotorSettings{
			HP:              rndFloat64(1.0, 10.0, 1),
			FullLoadCurrent: rndFloat64(1.0, 20.0, 2),
		})
	}
	return settings
}

func insertSettings(deviceID string) {
	useRaw := flipCoin()

	settings := rndSettings()

	if useRaw {
		jsonData, _ := json.Marshal(settings)
		resp, err := http.Post(fmt.Sprintf("http://%s/devices/%s/settings", httpHostPort, deviceID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
	} else {
		if err := restClient.SaveDeviceSettings(deviceID, settings); err != nil {
			panic(err)
		}
	}
}

func insertLimits(deviceID string) {
	err := restClient.UpdateMinMaxRange(deviceID, &models.DeviceSettingsLimits{
		Ranges: datatypes.JSONMap{
			"low_voltage_fault_min":  280.0,
			"low_voltage_fault_max":  380.0,
			"high_voltage_fault_min": 420.0,
			"high_voltage_fault_max": 500.0,
			"seed_time_min":          0.0,
			"seed_time_max":          120.0,
		},
	})
	if err != nil {
		panic(err)
	}
}

func doAction(deviceID string) {
	actions := []func(){
		genSaveSettingsAction(deviceID),
		genGetSettingsAction(deviceID),
		genGetSettingLogsAction(deviceID),
	}
	actionNames := []string{
		"SaveSettings",
		"GetSettings",
		"GetSettingLogs",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genSaveSettingsAction(deviceID string) func() {
	return func() {
		insertSettings(deviceID)
	}
}

func genGetSettingsAction(deviceID string) func() {
	return func() {
		useRaw := flipCoin()

		if useRaw {
			resp, err := http.Get(fmt.Sprintf("http://%s/devices/%s/settings", httpHostPort, deviceID))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp)
			}
		} else {
			if _, err := restClient.GetDeviceSettings(deviceID); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		}
	}
}

func genGetSettingLogsAction(deviceID string) func() {
	return func() {
		page, err := restClient.GetSettingLogs(deviceID, 0, 10)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if page.Pagination.Total < 1 {
			fmt.Printf("\nexpected at least one history record for %v\n", deviceID)
		}
	}
}
