package live

import (
	"context"

	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
)

// DeviceName reports the name of the device at (track, device).
func (g *Gateway) DeviceName(ctx context.Context, track, device int) (string, error) {
	if err := validateDevice(track, device); err != nil {
		return "", err
	}
	reply, err := g.query(ctx, liveosc.AddrDeviceGetName, echoPair, track, device)
	if err != nil {
		return "", err
	}
	return readString(liveosc.AddrDeviceGetName, reply)
}

// DeviceParameters reports every automatable parameter of the device at
// (track, device).
func (g *Gateway) DeviceParameters(ctx context.Context, track, device int) ([]DeviceParameter, error) {
	if err := validateDevice(track, device); err != nil {
		return nil, err
	}
	reply, err := g.query(ctx, liveosc.AddrDeviceGetParameters, echoPair, track, device)
	if err != nil {
		return nil, err
	}
	return parseParameters(liveosc.AddrDeviceGetParameters, reply)
}

// DeviceParameterValue reports the current value of one device parameter.
func (g *Gateway) DeviceParameterValue(ctx context.Context, track, device, parameter int) (float64, error) {
	if err := validateDevice(track, device); err != nil {
		return 0, err
	}
	if err := validateIndex("parameter index", parameter); err != nil {
		return 0, err
	}
	reply, err := g.query(ctx, liveosc.AddrDeviceGetParameter, echoTriple, track, device, parameter)
	if err != nil {
		return 0, err
	}
	return readFloat(liveosc.AddrDeviceGetParameter, reply)
}

// SetDeviceParameter sets the value of one device parameter. The value is
// in the parameter's own range as reported by DeviceParameters.
func (g *Gateway) SetDeviceParameter(track, device, parameter int, value float64) error {
	if err := validateDevice(track, device); err != nil {
		return err
	}
	if err := validateIndex("parameter index", parameter); err != nil {
		return err
	}
	return g.send(liveosc.AddrDeviceSetParameter, track, device, parameter, value)
}

func validateDevice(track, device int) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	return validateIndex("device index", device)
}
