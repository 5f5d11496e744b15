// SPDX-License-Identifier: MIT

package telemetry

import "sort"

// Property describes a machinery telemetry channel.
type Property struct {
	Key         string // wire key, e.g. "mainEngine_rpm"
	Label       string // localized display label
	Unit        string // display unit
	NonNegative bool   // the physical quantity cannot go below zero
}

// AxisName renders "label (unit)" for chart axes; the unit is omitted when empty.
func (p Property) AxisName() string {
	if p.Unit == "" {
		return p.Label
	}

	return p.Label + " (" + p.Unit + ")"
}

// Well-known property keys.
const (
	MainEngineRPM         = "mainEngine_rpm"
	MainEngineTorque      = "mainEngine_torque"
	MainEnginePower       = "mainEngine_power"
	MainEngineFuelFlow    = "mainEngine_fuelFlow"
	MainEngineCylinderTmp = "mainEngine_cylinderTemp"
	AuxEngineRPM          = "auxEngine_rpm"
	AuxEngineOilPressure  = "auxEngine_oilPressure"
	AuxEngineOilTemp      = "auxEngine_oilTemp"
	AuxEngineCurrent      = "auxEngine_current"
	BoilerPressure        = "boiler_pressure"
	BoilerWaterTemp       = "boiler_waterTemp"
	BoilerFlowRate        = "boiler_flowRate"
)

var catalog = map[string]Property{
	MainEngineRPM:         {MainEngineRPM, "主机轴转速", "rpm", true},
	MainEngineTorque:      {MainEngineTorque, "主机输出扭矩", "kN·m", false},
	MainEnginePower:       {MainEnginePower, "主机输出功率", "kW", true},
	MainEngineFuelFlow:    {MainEngineFuelFlow, "主机燃油消耗流量", "L/h", true},
	MainEngineCylinderTmp: {MainEngineCylinderTmp, "主机缸体温度", "℃", false},
	AuxEngineRPM:          {AuxEngineRPM, "辅机转速", "rpm", true},
	AuxEngineOilPressure:  {AuxEngineOilPressure, "辅机油压", "bar", true},
	AuxEngineOilTemp:      {AuxEngineOilTemp, "辅机润滑油温度", "℃", false},
	AuxEngineCurrent:      {AuxEngineCurrent, "辅机电流负载", "A", true},
	BoilerPressure:        {BoilerPressure, "锅炉蒸汽压力", "bar", true},
	BoilerWaterTemp:       {BoilerWaterTemp, "锅炉水温/蒸汽温度", "℃", false},
	BoilerFlowRate:        {BoilerFlowRate, "锅炉水流量", "L/min", true},
}

// Lookup returns the catalog entry for key. Unknown keys yield a Property
// labelled with the raw key, no unit, and ok == false.
func Lookup(key string) (p Property, ok bool) {
	p, ok = catalog[key]
	if !ok {
		p = Property{Key: key, Label: key}
	}

	return p, ok
}

// Keys returns all catalog keys in ascending order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
