// Command seed fills the database with demo owners, patients and
// appointments for local development.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/YaderM/vetapp-web-completo/internal/config"
	"github.com/YaderM/vetapp-web-completo/internal/database"
)

var especies = []string{"Perro", "Gato", "Conejo", "Ave", "Hámster"}

var motivos = []string{
	"Vacunación anual",
	"Control de rutina",
	"Desparasitación",
	"Revisión de piel",
	"Limpieza dental",
	"Cojera en pata trasera",
}

func main() {
	owners := flag.Int("owners", 20, "number of owners to insert")
	patientsPer := flag.Int("patients", 2, "patients per owner")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg := config.Load()
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	if err := seed(db, *owners, *patientsPer); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Println("seed complete")
}

func seed(db *sql.DB, ownerCount, patientsPerOwner int) error {
	for i := 0; i < ownerCount; i++ {
		var ownerID int64
		direccion := gofakeit.Street() + ", " + gofakeit.City()
		err := db.QueryRow(`
			INSERT INTO propietarios (nombre, apellido, telefono, email, direccion)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			gofakeit.FirstName(),
			gofakeit.LastName(),
			gofakeit.Phone(),
			fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			direccion,
		).Scan(&ownerID)
		if err != nil {
			return fmt.Errorf("insert propietario: %w", err)
		}

		for j := 0; j < patientsPerOwner; j++ {
			var patientID int64
			especie := especies[gofakeit.Number(0, len(especies)-1)]
			err := db.QueryRow(`
				INSERT INTO pacientes (nombre, especie, raza, edad, historial_medico, propietario_id)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id`,
				gofakeit.PetName(),
				especie,
				gofakeit.Animal(),
				gofakeit.Number(1, 15),
				gofakeit.Sentence(8),
				ownerID,
			).Scan(&patientID)
			if err != nil {
				return fmt.Errorf("insert paciente: %w", err)
			}

			// Roughly half the patients get an upcoming appointment
			if gofakeit.Bool() {
				fecha := time.Now().AddDate(0, 0, gofakeit.Number(1, 60))
				_, err := db.Exec(`
					INSERT INTO citas (fecha, motivo, paciente_id)
					VALUES ($1, $2, $3)`,
					fecha,
					motivos[gofakeit.Number(0, len(motivos)-1)],
					patientID,
				)
				if err != nil {
					return fmt.Errorf("insert cita: %w", err)
				}
			}
		}
	}

	log.Printf("inserted %d propietarios with %d pacientes each", ownerCount, patientsPerOwner)
	return nil
}
