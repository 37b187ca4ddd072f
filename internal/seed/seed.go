// Package seed populates the university directory with its initial
// reference data on first startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/repositories"
	"github.com/fakhrin/unicampus/internal/pkg/logger"
)

func strp(s string) *string { return &s }

func floatp(f float64) *float64 { return &f }

// CreateDefaultData inserts the directory reference data if absent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	repo := repositories.NewDirectoryRepository(dbPool)
	logger.Info().Msg("Checking/Creating directory reference data...")

	var finalErr error

	campuses := []*models.Campus{
		{ID: "A", Name: "Kampus A (Rawamangun)", Address: "Jl. Rawamangun Muka",
			Latitude: floatp(-6.1947), Longitude: floatp(106.8784),
			Description: strp("Main campus of State University of Jakarta.")},
		{ID: "B", Name: "Kampus B (Rawamangun)", Address: "Jl. Pemuda No. 10",
			Latitude: floatp(-6.1938), Longitude: floatp(106.8821),
			Description: strp("Home to Faculty of Engineering and Economics.")},
		{ID: "C", Name: "Kampus C (Rawamangun)", Address: "Jl. Rawamangun Muka Raya",
			Latitude: floatp(-6.1925), Longitude: floatp(106.8795),
			Description: strp("Additional campus facilities in Rawamangun.")},
		{ID: "D", Name: "Kampus D (Halimun)", Address: "Halimun, Jakarta Selatan",
			Latitude: floatp(-6.2088), Longitude: floatp(106.8317),
			Description: strp("Campus located in the heart of South Jakarta.")},
	}
	for _, c := range campuses {
		if err := repo.InsertCampus(ctx, c); err != nil {
			logger.Error().Err(err).Str("campus", c.ID).Msg("Error seeding campus")
			finalErr = errors.Join(finalErr, err)
		}
	}

	buildings := []*models.Building{
		{ID: "b1", CampusID: "A", Name: "Gedung Dewi Sartika",
			Latitude: floatp(-6.1947), Longitude: floatp(106.8784),
			Description: strp("Administrative building and ceremonial hall.")},
		{ID: "b2", CampusID: "A", Name: "Gedung Ki Hajar Dewantara",
			Latitude: floatp(-6.1950), Longitude: floatp(106.8780),
			Description: strp("Classroom and faculty office building.")},
		{ID: "b3", CampusID: "B", Name: "Gedung Pascasarjana",
			Latitude: floatp(-6.1938), Longitude: floatp(106.8821),
			Description: strp("Home to Postgraduate programs.")},
	}
	for _, b := range buildings {
		if err := repo.InsertBuilding(ctx, b); err != nil {
			logger.Error().Err(err).Str("building", b.ID).Msg("Error seeding building")
			finalErr = errors.Join(finalErr, err)
		}
	}

	rooms := []*models.Room{
		{ID: "r1", BuildingID: "b1", Name: "Aula Latief Hendraningrat", Floor: strp("Lt. 2"), Type: strp("Aula")},
		{ID: "r2", BuildingID: "b1", Name: "Ruang Rapat 1", Floor: strp("Lt. 1"), Type: strp("Rapat")},
	}
	for _, r := range rooms {
		if err := repo.InsertRoom(ctx, r); err != nil {
			logger.Error().Err(err).Str("room", r.ID).Msg("Error seeding room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	faculties := []*models.Faculty{
		{ID: "f1", Name: "Fakultas Ilmu Pendidikan (FIP)",
			Description: strp("Focuses on education and pedagogical research."),
			Website:     strp("https://fip.unj.ac.id")},
		{ID: "f2", Name: "Fakultas Teknik (FT)",
			Description: strp("Innovation and technology development."),
			Website:     strp("https://ft.unj.ac.id")},
		{ID: "f3", Name: "Fakultas Ekonomi (FE)",
			Description: strp("Economic development and business administration."),
			Website:     strp("https://fe.unj.ac.id")},
	}
	for _, f := range faculties {
		if err := repo.InsertFaculty(ctx, f); err != nil {
			logger.Error().Err(err).Str("faculty", f.ID).Msg("Error seeding faculty")
			finalErr = errors.Join(finalErr, err)
		}
	}

	programs := []*models.StudyProgram{
		{ID: "p1", FacultyID: "f2", Name: "S1 Sistem Informasi", Accreditation: strp("Accredited A")},
		{ID: "p2", FacultyID: "f2", Name: "S1 Teknik Informatika", Accreditation: strp("Accredited Unggul")},
	}
	for _, p := range programs {
		if err := repo.InsertProgram(ctx, p); err != nil {
			logger.Error().Err(err).Str("program", p.ID).Msg("Error seeding study program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lecturers := []*models.Lecturer{
		{ID: "l1", ProgramID: "p1", Name: "Dr. Eng. Muhammad", NIP: strp("19800101"),
			Email: strp("muhammad@unj.ac.id"), Expertise: strp("Artificial Intelligence")},
		{ID: "l2", ProgramID: "p1", Name: "Prof. Siti Aminah", NIP: strp("19750505"),
			Email: strp("siti@unj.ac.id"), Expertise: strp("Human-Computer Interaction")},
	}
	for _, l := range lecturers {
		if err := repo.InsertLecturer(ctx, l); err != nil {
			logger.Error().Err(err).Str("lecturer", l.ID).Msg("Error seeding lecturer")
			finalErr = errors.Join(finalErr, err)
		}
	}

	news := []*models.NewsItem{
		{ID: "1", Title: "Wisuda Semester 119", Date: "2024-03-15", URL: "https://unj.ac.id", Category: "Terbaru"},
		{ID: "2", Title: "Prestasi Internasional Mahasiswa", Date: "2024-03-10", URL: "https://unj.ac.id", Category: "Prestasi"},
		{ID: "3", Title: "Inovasi Panel Surya Murah", Date: "2024-03-05", URL: "https://unj.ac.id", Category: "Riset & Inovasi"},
		{ID: "4", Title: "Pengabdian Masyarakat di Desa", Date: "2024-03-01", URL: "https://unj.ac.id", Category: "Pengabdian"},
		{ID: "5", Title: "Lomba Debat Nasional", Date: "2024-02-25", URL: "https://unj.ac.id", Category: "Prestasi"},
	}
	for _, n := range news {
		if err := repo.InsertNews(ctx, n); err != nil {
			logger.Error().Err(err).Str("news", n.ID).Msg("Error seeding news item")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		logger.Info().Msg("Directory reference data ready")
	}
	return finalErr
}
