package models

import "testing"

func TestResolveCapabilities(t *testing.T) {
	tests := []struct {
		name  string
		roles []UserRole
		manageEntities,
		takeAttendance,
		manageUsers bool
	}{
		{"no roles", nil, false, false, false},
		{"student", []UserRole{{Role: RoleStudent}}, false, false, false},
		{"faculty", []UserRole{{Role: RoleFaculty}}, false, true, false},
		{"admin", []UserRole{{Role: RoleAdmin}}, true, true, false},
		{"super admin", []UserRole{{Role: RoleSuperAdmin}}, true, true, true},
		{"staff and faculty", []UserRole{{Role: RoleStaff}, {Role: RoleFaculty}}, false, true, false},
		{"unknown role ignored", []UserRole{{Role: Role("janitor")}}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := ResolveCapabilities(tt.roles)
			if got := caps.CanManageEntities(); got != tt.manageEntities {
				t.Errorf("CanManageEntities = %v, want %v", got, tt.manageEntities)
			}
			if got := caps.CanTakeAttendance(); got != tt.takeAttendance {
				t.Errorf("CanTakeAttendance = %v, want %v", got, tt.takeAttendance)
			}
			if got := caps.CanManageUsers(); got != tt.manageUsers {
				t.Errorf("CanManageUsers = %v, want %v", got, tt.manageUsers)
			}
		})
	}
}

func TestParseAttendanceStatus(t *testing.T) {
	if s, ok := ParseAttendanceStatus("present"); !ok || s != AttendancePresent {
		t.Fatalf("present: %v %v", s, ok)
	}
	if s, ok := ParseAttendanceStatus("absent"); !ok || s != AttendanceAbsent {
		t.Fatalf("absent: %v %v", s, ok)
	}
	if _, ok := ParseAttendanceStatus("unset"); ok {
		t.Fatal("unset must not be markable")
	}
	if _, ok := ParseAttendanceStatus("late"); ok {
		t.Fatal("unknown label accepted")
	}
}

func TestStatusRevRoundTrip(t *testing.T) {
	if AttendancePresent.RevValue() != 1 || AttendanceAbsent.RevValue() != 0 {
		t.Fatal("rev values wrong")
	}
	if StatusFromRev(1) != AttendancePresent || StatusFromRev(0) != AttendanceAbsent {
		t.Fatal("rev parsing wrong")
	}
}
