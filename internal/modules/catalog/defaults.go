package catalog

import (
	"time"

	"oceanbreeze/internal/domain"
)

const pexels = "?auto=compress&cs=tinysrgb&w=800"

// DefaultRooms is the catalogue written when the rooms key has never been set.
// Every room is stamped with now.
func DefaultRooms(now time.Time) []domain.Room {
	rooms := []domain.Room{
		{
			ID:          "1",
			Name:        "Suíte Oceano",
			Description: "Uma luxuosa suíte com vista panorâmica para o oceano. Inclui varanda privativa, banheira de hidromassagem e decoração elegante.",
			Price:       450,
			Image:       "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Frigobar", "Vista para o Mar", "Varanda"},
		},
		{
			ID:          "2",
			Name:        "Quarto Deluxe",
			Description: "Quarto espaçoso e confortável com todas as comodidades modernas. Perfeito para uma estadia relaxante.",
			Price:       280,
			Image:       "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Frigobar", "Cofre"},
		},
		{
			ID:          "3",
			Name:        "Quarto Standard",
			Description: "Quarto aconchegante e bem equipado, ideal para viajantes que buscam conforto e bom custo-benefício.",
			Price:       180,
			Image:       "https://images.pexels.com/photos/775219/pexels-photo-775219.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV"},
		},
		{
			ID:          "6",
			Name:        "Suíte Romântica",
			Description: "Perfeita para casais, com iluminação suave, banheira para dois e vista para o pôr do sol.",
			Price:       380,
			Image:       "https://images.pexels.com/photos/271619/pexels-photo-271619.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Banheira", "Varanda"},
		},
		{
			ID:          "7",
			Name:        "Quarto Família",
			Description: "Amplo espaço com camas extras e estrutura ideal para famílias com crianças.",
			Price:       320,
			Image:       "https://images.pexels.com/photos/210604/pexels-photo-210604.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Berço", "Frigobar"},
		},
		{
			ID:          "8",
			Name:        "Suíte Executiva",
			Description: "Design moderno e confortável, ideal para viagens de negócios com área de trabalho.",
			Price:       400,
			Image:       "https://images.pexels.com/photos/373892/pexels-photo-373892.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Mesa de Trabalho", "Cofre"},
		},
		{
			ID:          "9",
			Name:        "Cabana Rústica",
			Description: "Hospede-se em uma charmosa cabana de madeira em meio à natureza.",
			Price:       260,
			Image:       "https://images.pexels.com/photos/271634/pexels-photo-271634.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Lareira", "Varanda", "Frigobar"},
		},
		{
			ID:          "10",
			Name:        "Quarto Panorâmico",
			Description: "Vista deslumbrante da cidade em um quarto com janelas amplas e decoração minimalista.",
			Price:       370,
			Image:       "https://images.pexels.com/photos/271619/pexels-photo-271619.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Vista para a Cidade"},
		},
		{
			ID:          "11",
			Name:        "Loft Urbano",
			Description: "Acomodação moderna com conceito aberto e decoração industrial, no centro da cidade.",
			Price:       410,
			Image:       "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "TV", "Cozinha Compacta", "Ar Condicionado"},
		},
		{
			ID:          "13",
			Name:        "Quarto Pet Friendly",
			Description: "Espaço ideal para quem viaja com seu pet, com comodidades adaptadas para animais de estimação.",
			Price:       250,
			Image:       "https://images.pexels.com/photos/271639/pexels-photo-271639.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Espaço Pet"},
		},
		{
			ID:          "14",
			Name:        "Suíte Zen",
			Description: "Ambiente tranquilo com decoração inspirada no estilo oriental, ideal para relaxar e meditar.",
			Price:       340,
			Image:       "https://images.pexels.com/photos/210265/pexels-photo-210265.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Ar Condicionado", "TV", "Tatame", "Jardim Interno"},
		},
		{
			ID:          "15",
			Name:        "Apartamento Studio",
			Description: "Studio completo com cozinha, ideal para estadias longas ou viagens de trabalho.",
			Price:       290,
			Image:       "https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg" + pexels,
			Amenities:   []string{"Wi-Fi", "Cozinha Completa", "Ar Condicionado", "TV"},
		},
	}

	for i := range rooms {
		rooms[i].CreatedAt = now
	}
	return rooms
}
