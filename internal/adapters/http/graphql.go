package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/placesbridge/internal/adapters/channel"
	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// codedError exposes the channel error code as a GraphQL error extension.
type codedError struct{ err error }

func (e codedError) Error() string { return e.err.Error() }

func (e codedError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": channel.Code(e.err)}
}

// buildSchema creates the GraphQL schema wired to the autocomplete channel.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	latLngInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LatLngInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"latitude":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"longitude": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	boundsInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LatLngBoundsInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"southwest": &graphql.InputObjectFieldConfig{Type: latLngInput},
			"northeast": &graphql.InputObjectFieldConfig{Type: latLngInput},
		},
	})

	predictionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AutocompletePrediction",
		Fields: graphql.Fields{
			"distanceMeters": &graphql.Field{Type: graphql.Int},
			"fullText":       &graphql.Field{Type: graphql.String},
			"placeId":        &graphql.Field{Type: graphql.String},
			"placeTypes":     &graphql.Field{Type: graphql.NewList(graphql.Int)},
			"primaryText":    &graphql.Field{Type: graphql.String},
			"secondaryText":  &graphql.Field{Type: graphql.String},
		},
	})

	catalogType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CatalogEntry",
		Fields: graphql.Fields{
			"code":   &graphql.Field{Type: graphql.Int},
			"name":   &graphql.Field{Type: graphql.String},
			"native": &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"autocomplete": &graphql.Field{
				Type:        graphql.NewList(predictionType),
				Description: "Autocomplete predictions for a partial query",
				Args: graphql.FieldConfigArgument{
					"query":               &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"locationBias":        &graphql.ArgumentConfig{Type: boundsInput},
					"locationRestriction": &graphql.ArgumentConfig{Type: boundsInput},
					"origin":              &graphql.ArgumentConfig{Type: latLngInput},
					"countries":           &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"typeFilter":          &graphql.ArgumentConfig{Type: graphql.NewList(graphql.Int)},
					"refreshToken":        &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if deps.GraphQL == nil {
						return nil, codedError{domain.ErrNotAttached}
					}
					req := requestFromArgs(p.Args)
					preds, err := deps.GraphQL.Handle(p.Context, req)
					if err != nil {
						return nil, codedError{err}
					}
					// Convert to maps so nullable pointers render as null.
					result := make([]map[string]interface{}, 0, len(preds))
					for _, pr := range preds {
						if pr == nil {
							continue
						}
						m := map[string]interface{}{
							"fullText":      pr.FullText,
							"placeId":       pr.PlaceID,
							"primaryText":   pr.PrimaryText,
							"secondaryText": pr.SecondaryText,
						}
						if pr.DistanceMeters != nil {
							m["distanceMeters"] = int(*pr.DistanceMeters)
						}
						types := make([]interface{}, len(pr.PlaceTypes))
						for i, t := range pr.PlaceTypes {
							if t != nil {
								types[i] = int(*t)
							}
						}
						m["placeTypes"] = types
						result = append(result, m)
					}
					return result, nil
				},
			},
			"placeTypes": &graphql.Field{
				Type:        graphql.NewList(catalogType),
				Description: "Every place type code",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalogMaps(PlaceTypeCatalog()), nil
				},
			},
			"typeFilters": &graphql.Field{
				Type:        graphql.NewList(catalogType),
				Description: "Every selectable type filter code",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalogMaps(TypeFilterCatalog()), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

func catalogMaps(entries []CatalogEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, len(entries))
	for i, e := range entries {
		out[i] = map[string]interface{}{"code": int(e.Code), "name": e.Name, "native": e.Native}
	}
	return out
}

func requestFromArgs(args map[string]interface{}) messages.FindAutocompletePredictionsRequest {
	req := messages.FindAutocompletePredictionsRequest{}
	req.Query, _ = args["query"].(string)
	req.LocationBias = boundsArg(args["locationBias"])
	req.LocationRestriction = boundsArg(args["locationRestriction"])
	req.Origin = latLngArg(args["origin"])
	if list, ok := args["countries"].([]interface{}); ok {
		req.Countries = make([]*string, len(list))
		for i, v := range list {
			if s, ok := v.(string); ok {
				req.Countries[i] = messages.String(s)
			}
		}
	}
	if list, ok := args["typeFilter"].([]interface{}); ok {
		req.TypeFilter = make([]*int64, len(list))
		for i, v := range list {
			if n, ok := v.(int); ok {
				req.TypeFilter[i] = messages.Int64(int64(n))
			}
		}
	}
	if b, ok := args["refreshToken"].(bool); ok {
		req.RefreshToken = messages.Bool(b)
	}
	return req
}

func boundsArg(v interface{}) *messages.LatLngBounds {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return &messages.LatLngBounds{
		Southwest: latLngArg(m["southwest"]),
		Northeast: latLngArg(m["northeast"]),
	}
}

func latLngArg(v interface{}) *messages.LatLng {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	out := &messages.LatLng{}
	if f, ok := m["latitude"].(float64); ok {
		out.Latitude = messages.Float64(f)
	}
	if f, ok := m["longitude"].(float64); ok {
		out.Longitude = messages.Float64(f)
	}
	return out
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
