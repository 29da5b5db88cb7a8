package badge

import "github.com/lorenzhs/gpn17-snake/pkg/sensor"

// indirections so tests can run without hardware
var (
	sensorBNO055  = sensor.NewBNO055
	sensorMPU9250 = sensor.NewMPU9250
)
