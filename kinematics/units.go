package kinematics

// Unit tags a coordinate of a position, velocity, acceleration or force vector. Units are metadata for display and
// carry no numeric effect.
type Unit int

// The units a joint coordinate may carry.
const (
	UnitNone Unit = iota
	UnitMeter
	UnitMeterPerSecond
	UnitMeterPerSecondSquared
	UnitRadian
	UnitRadianPerSecond
	UnitRadianPerSecondSquared
	UnitNewton
	UnitNewtonMeter
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return ""
	case UnitMeter:
		return "m"
	case UnitMeterPerSecond:
		return "m/s"
	case UnitMeterPerSecondSquared:
		return "m/s²"
	case UnitRadian:
		return "rad"
	case UnitRadianPerSecond:
		return "rad/s"
	case UnitRadianPerSecondSquared:
		return "rad/s²"
	case UnitNewton:
		return "N"
	case UnitNewtonMeter:
		return "N·m"
	default:
		return "unknown"
	}
}
