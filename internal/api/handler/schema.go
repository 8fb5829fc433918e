package handler

// Requests accepted by the development backend. Responses reuse the domain
// types, which already carry the wire field names.

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createTeamRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Pokemons []string `json:"pokemons"`
}

type addPokemonRequest struct {
	PokemonID string `json:"pokemonId" validate:"required"`
}

type updateProfileRequest struct {
	Username     *string `json:"username"     validate:"omitempty,min=1"`
	Avatar       *string `json:"avatar"       validate:"omitempty,url"`
	FavoriteTeam *string `json:"favoriteTeam"`
}

type pokemonsQuery struct {
	Page       int    `query:"page"       validate:"gte=0"`
	Limit      int    `query:"limit"      validate:"gte=0,lte=100"`
	Name       string `query:"name"`
	Type       string `query:"type"`
	Generation int    `query:"generation" validate:"gte=0"`
}
