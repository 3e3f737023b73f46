package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/leengari/space-missions/internal/domain/mission"
)

// MissionsCSV is a small dataset in the shape of the production file
const MissionsCSV = `Company,Location,Date,Time,Rocket,Mission,RocketStatus,Price,MissionStatus
RVSN USSR,"Site 1/5, Baikonur Cosmodrome, Kazakhstan",1957-10-04,19:28:00,Sputnik 8K71PS,Sputnik-1,Retired,,Success
US Navy,"LC-18A, Cape Canaveral AFS, Florida, USA",1957-12-06,16:44:00,Vanguard,Vanguard TV3,Retired,,Failure
NASA,"LC-39A, Kennedy Space Center, Florida, USA",2020-06-15,10:00:00,Falcon9,Artemis-1,Active,"1,500.0",Success
SpaceX,"LC-39A, Kennedy Space Center, Florida, USA",2020-05-30,19:22:00,Falcon9,Demo-2,Active,62.0,Success
SpaceX,"SLC-40, Cape Canaveral SFS, Florida, USA",2020-01-07,02:19:00,Falcon9,Starlink V1 L2,Active,50.0,Success
SpaceX,"Omelek Island, Kwajalein Atoll, USA",2008-09-28,23:15:00,Falcon 1,RatSat,Retired,7.0,Success
SpaceX,"Omelek Island, Kwajalein Atoll, USA",2006-03-24,22:30:00,Falcon 1,FalconSAT-2,Retired,7.0,Failure
ULA,"SLC-41, Cape Canaveral SFS, Florida, USA",2020-03-26,20:18:00,Atlas,AEHF 6,Active,109.0,Success
ULA,"SLC-41, Cape Canaveral SFS, Florida, USA",2020-07-30,11:50:00,Atlas,Mars 2020,Active,145.0,Success
ULA,"SLC-37B, Cape Canaveral SFS, Florida, USA",2020-12-11,01:09:00,Delta,NROL-44,Active,350.0,Partial Failure
ULA,"SLC-41, Cape Canaveral SFS, Florida, USA",2020-05-17,13:14:00,Atlas,USSF-7,Active,TBD,Success
Astra,"Pacific Spaceport Complex, Alaska, USA",2020-09-12,03:19:00,,Rocket 3.1,Active,2.5,Prelaunch Failure
`

// WriteCSV writes content to a file in a fresh temp dir and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "space_missions.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write CSV fixture: %v", err)
	}
	return path
}

// CreateMissionTable builds a table directly from records, bypassing the loader.
func CreateMissionTable(records ...mission.Record) *mission.Table {
	columns := append([]string{}, mission.RequiredColumns...)
	columns = append(columns, mission.ColumnPrice)
	return mission.NewTable("test", columns, records)
}

// Rec is a compact record constructor for query tests.
func Rec(company, name, date, time, rocket, status string) mission.Record {
	year := 0
	if len(date) >= 4 {
		year, _ = strconv.Atoi(date[:4])
	}
	return mission.Record{
		Company:       company,
		Mission:       name,
		Date:          date,
		Year:          year,
		Time:          time,
		Rocket:        rocket,
		MissionStatus: status,
	}
}
