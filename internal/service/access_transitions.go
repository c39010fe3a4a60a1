package service

import "coworka/internal/entity"

type ControlAction string

const (
	ControlActionLock          ControlAction = "LOCK"
	ControlActionUnlock        ControlAction = "UNLOCK"
	ControlActionEmergencyOpen ControlAction = "EMERGENCY_OPEN"
	ControlActionReset         ControlAction = "RESET"
	ControlActionRestart       ControlAction = "RESTART"
)

// controlTransitions lists the point statuses from which each control action
// may be issued. EMERGENCY_OPEN and RESET are escape hatches and accepted
// from any state.
var controlTransitions = map[ControlAction][]entity.AccessPointStatus{
	ControlActionLock: {
		entity.AccessPointStatusActive,
		entity.AccessPointStatusEmergencyOpen,
	},
	ControlActionUnlock: {
		entity.AccessPointStatusActive,
	},
	ControlActionEmergencyOpen: {
		entity.AccessPointStatusActive,
		entity.AccessPointStatusMaintenance,
		entity.AccessPointStatusEmergencyOpen,
	},
	ControlActionReset: {
		entity.AccessPointStatusActive,
		entity.AccessPointStatusMaintenance,
		entity.AccessPointStatusEmergencyOpen,
	},
	ControlActionRestart: {
		entity.AccessPointStatusActive,
		entity.AccessPointStatusMaintenance,
	},
}

func ValidControlTransition(action ControlAction, from entity.AccessPointStatus) bool {
	allowed, ok := controlTransitions[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == from {
			return true
		}
	}
	return false
}
