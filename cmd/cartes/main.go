// Command cartes is a command-line front-end for the Cartes.io mapping
// platform API. Subcommands are grouped by resource (map, marker,
// category, user, me); each maps to exactly one client call.
// Successful calls print the response as JSON; failures are logged and
// exit non-zero.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cartes "github.com/simple-maps/cartes-go"
)

var baseURL string
var apiKey string
var debug bool

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cartes",
		Short:         "CLI for the Cartes.io mapping platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", getEnv("CARTES_BASE_URL", cartes.DefaultBaseURL), "Base URL of the Cartes.io API")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("CARTES_API_KEY"), "API key for authenticated calls")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newMapCmd())
	rootCmd.AddCommand(newMarkerCmd())
	rootCmd.AddCommand(newCategoryCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newMeCmd())

	return rootCmd
}

func newClient() (*cartes.Client, error) {
	var opts []cartes.Option
	if apiKey != "" {
		opts = append(opts, cartes.WithAPIKey(apiKey))
	}
	if debug {
		opts = append(opts, cartes.WithDebugLogging(true))
	}
	return cartes.New(baseURL, opts...)
}

func callContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// boolPtr returns &v when the named flag was set, nil otherwise, so
// unset flags stay absent from the wire form.
func boolPtr(cmd *cobra.Command, name string, v bool) *bool {
	if cmd.Flags().Changed(name) {
		return &v
	}
	return nil
}

func floatPtr(cmd *cobra.Command, name string, v float64) *float64 {
	if cmd.Flags().Changed(name) {
		return &v
	}
	return nil
}

// mapPayloadFromFlags builds a MapCreatePayload from the shared map
// attribute flags, translating enum strings through the closed sets.
func mapPayloadFromFlags(title, slug, description, privacy, permission string) (*cartes.MapCreatePayload, error) {
	p := &cartes.MapCreatePayload{Title: title, Slug: slug, Description: description}
	if privacy != "" {
		v, err := cartes.ParsePrivacy(privacy)
		if err != nil {
			return nil, err
		}
		p.Privacy = v
	}
	if permission != "" {
		v, err := cartes.ParsePermission(permission)
		if err != nil {
			return nil, err
		}
		p.UsersCanCreateMarkers = v
	}
	return p, nil
}

// --------------------------------------------------------------------
// map
// --------------------------------------------------------------------

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "map", Short: "Map management commands"}
	cmd.AddCommand(newMapListCmd())
	cmd.AddCommand(newMapSearchCmd())
	cmd.AddCommand(newMapGetCmd())
	cmd.AddCommand(newMapCreateCmd())
	cmd.AddCommand(newMapEditCmd())
	cmd.AddCommand(newMapDeleteCmd())
	cmd.AddCommand(newMapStaticImageCmd())
	cmd.AddCommand(newMapClaimCmd())
	cmd.AddCommand(newMapUnclaimCmd())
	cmd.AddCommand(newMapUserListCmd())
	cmd.AddCommand(newMapUserAddCmd())
	cmd.AddCommand(newMapUserRemoveCmd())
	return cmd
}

func newMapListCmd() *cobra.Command {
	var ids, categoryIDs, with []string
	var orderBy, query, format string
	var withMine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List public maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			params := &cartes.MapListParams{
				IDs:           ids,
				WithRelations: with,
				OrderBy:       orderBy,
				Query:         query,
				Format:        format,
				WithMine:      boolPtr(cmd, "with-mine", withMine),
			}
			for _, s := range categoryIDs {
				var id int64
				if _, err := fmt.Sscan(s, &id); err != nil {
					return fmt.Errorf("invalid category id %q", s)
				}
				params.CategoryIDs = append(params.CategoryIDs, id)
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			maps, err := c.MapList(ctx, params)
			if err != nil {
				return err
			}
			printJSON(maps)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Filter by map UUIDs")
	cmd.Flags().StringSliceVar(&categoryIDs, "category-ids", nil, "Filter by category IDs")
	cmd.Flags().StringSliceVar(&with, "with", nil, "Related data to include (e.g. markers)")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Sort field")
	cmd.Flags().StringVar(&query, "query", "", "Filter query")
	cmd.Flags().StringVar(&format, "format", "", "Response format")
	cmd.Flags().BoolVar(&withMine, "with-mine", false, "Include your own maps")
	return cmd
}

func newMapSearchCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search public maps by query",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			maps, err := c.MapSearch(ctx, query)
			if err != nil {
				return err
			}
			printJSON(maps)
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Search query")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newMapGetCmd() *cobra.Command {
	var mapID string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a single map by UUID",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MapGet(ctx, mapID)
			if err != nil {
				return err
			}
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMapCreateCmd() *cobra.Command {
	var title, slug, description, privacy, permission string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new map",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := mapPayloadFromFlags(title, slug, description, privacy, permission)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MapCreate(ctx, payload)
			if err != nil {
				return err
			}
			log.Debug().Str("uuid", m.UUID).Msg("map created")
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title of the map")
	cmd.Flags().StringVar(&slug, "slug", "", "URL slug for the map")
	cmd.Flags().StringVar(&description, "description", "", "Description of the map")
	cmd.Flags().StringVar(&privacy, "privacy", "", "Privacy level: public, unlisted, private")
	cmd.Flags().StringVar(&permission, "users-can-create-markers", "", "Who can create markers: yes, no, only_logged_in")
	return cmd
}

func newMapEditCmd() *cobra.Command {
	var mapID, mapToken string
	var title, slug, description, privacy, permission string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an existing map",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := mapPayloadFromFlags(title, slug, description, privacy, permission)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MapEdit(ctx, mapID, mapToken, payload)
			if err != nil {
				return err
			}
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().StringVar(&mapToken, "map-token", "", "Map edit token")
	cmd.Flags().StringVar(&title, "title", "", "Title of the map")
	cmd.Flags().StringVar(&slug, "slug", "", "URL slug for the map")
	cmd.Flags().StringVar(&description, "description", "", "Description of the map")
	cmd.Flags().StringVar(&privacy, "privacy", "", "Privacy level: public, unlisted, private")
	cmd.Flags().StringVar(&permission, "users-can-create-markers", "", "Who can create markers: yes, no, only_logged_in")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMapDeleteCmd() *cobra.Command {
	var mapID, mapToken string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			if err := c.MapDelete(ctx, mapID, mapToken); err != nil {
				return err
			}
			fmt.Println("Map deleted")
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().StringVar(&mapToken, "map-token", "", "Map edit token")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMapStaticImageCmd() *cobra.Command {
	var mapID string
	var zoom int
	cmd := &cobra.Command{
		Use:   "static-image",
		Short: "Get a static image URL for a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var z *int
			if cmd.Flags().Changed("zoom") {
				z = &zoom
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			img, err := c.MapStaticImage(ctx, mapID, z)
			if err != nil {
				return err
			}
			printJSON(img)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().IntVar(&zoom, "zoom", 0, "Zoom level (2-19)")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMapClaimCmd() *cobra.Command {
	var mapID, mapToken string
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim an anonymous map for your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MapClaim(ctx, mapID, mapToken)
			if err != nil {
				return err
			}
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().StringVar(&mapToken, "map-token", "", "Map edit token")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("map-token")
	return cmd
}

func newMapUnclaimCmd() *cobra.Command {
	var mapID string
	cmd := &cobra.Command{
		Use:   "unclaim",
		Short: "Make a claimed map anonymous again",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			if err := c.MapUnclaim(ctx, mapID); err != nil {
				return err
			}
			fmt.Println("Map unclaimed")
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMapUserListCmd() *cobra.Command {
	var mapID string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users with access to a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			users, err := c.MapUserList(ctx, mapID)
			if err != nil {
				return err
			}
			printJSON(users)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMapUserAddCmd() *cobra.Command {
	var mapID, username string
	var canCreateMarkers bool
	cmd := &cobra.Command{
		Use:   "user-add",
		Short: "Add a user to a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			mu, err := c.MapUserAdd(ctx, mapID, username, boolPtr(cmd, "can-create-markers", canCreateMarkers))
			if err != nil {
				return err
			}
			printJSON(mu)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().StringVar(&username, "username", "", "Username to add")
	cmd.Flags().BoolVar(&canCreateMarkers, "can-create-markers", false, "Whether the user can create markers")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newMapUserRemoveCmd() *cobra.Command {
	var mapID, username string
	cmd := &cobra.Command{
		Use:   "user-remove",
		Short: "Remove a user from a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			if err := c.MapUserDelete(ctx, mapID, username); err != nil {
				return err
			}
			fmt.Println("User removed")
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().StringVar(&username, "username", "", "Username to remove")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// --------------------------------------------------------------------
// marker
// --------------------------------------------------------------------

func newMarkerCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "marker", Short: "Marker management commands"}
	cmd.AddCommand(newMarkerListCmd())
	cmd.AddCommand(newMarkerCreateCmd())
	cmd.AddCommand(newMarkerEditCmd())
	cmd.AddCommand(newMarkerDeleteCmd())
	cmd.AddCommand(newMarkerSpamCmd())
	cmd.AddCommand(newMarkerLocationListCmd())
	cmd.AddCommand(newMarkerLocationAddCmd())
	return cmd
}

func newMarkerListCmd() *cobra.Command {
	var mapID, format string
	var showExpired bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the markers of a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			params := &cartes.MarkerListParams{
				ShowExpired: boolPtr(cmd, "show-expired", showExpired),
				Format:      format,
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			markers, err := c.MarkerList(ctx, mapID, params)
			if err != nil {
				return err
			}
			printJSON(markers)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().BoolVar(&showExpired, "show-expired", false, "Include expired markers")
	cmd.Flags().StringVar(&format, "format", "", "Response format")
	_ = cmd.MarkFlagRequired("map-id")
	return cmd
}

func newMarkerCreateCmd() *cobra.Command {
	var mapID, mapToken, categoryName, description string
	var lat, lng float64
	var category int64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a marker on a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := cartes.MarkerCreatePayload{
				MapToken:     mapToken,
				Lat:          lat,
				Lng:          lng,
				CategoryName: categoryName,
				Description:  description,
			}
			if cmd.Flags().Changed("category") {
				payload.Category = &category
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MarkerCreate(ctx, mapID, payload)
			if err != nil {
				return err
			}
			log.Debug().Int64("id", m.ID).Msg("marker created")
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().StringVar(&mapToken, "map-token", "", "Map edit token")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (-90 to 90)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude (-180 to 180)")
	cmd.Flags().Int64Var(&category, "category", 0, "Category ID")
	cmd.Flags().StringVar(&categoryName, "category-name", "", "Category name")
	cmd.Flags().StringVar(&description, "description", "", "Marker description")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func newMarkerEditCmd() *cobra.Command {
	var mapID, markerToken, description string
	var markerID int64
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a marker's description",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MarkerEdit(ctx, mapID, markerID, markerToken, description)
			if err != nil {
				return err
			}
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().Int64Var(&markerID, "marker-id", 0, "Marker ID")
	cmd.Flags().StringVar(&markerToken, "marker-token", "", "Marker edit token")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("marker-id")
	return cmd
}

func newMarkerDeleteCmd() *cobra.Command {
	var mapID, markerToken string
	var markerID int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a marker from a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			if err := c.MarkerDelete(ctx, mapID, markerID, markerToken); err != nil {
				return err
			}
			fmt.Println("Marker deleted")
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().Int64Var(&markerID, "marker-id", 0, "Marker ID")
	cmd.Flags().StringVar(&markerToken, "marker-token", "", "Marker edit token")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("marker-id")
	return cmd
}

func newMarkerSpamCmd() *cobra.Command {
	var mapID, mapToken string
	var markerID int64
	var spam bool
	cmd := &cobra.Command{
		Use:   "spam",
		Short: "Mark or unmark a marker as spam",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			m, err := c.MarkerSpam(ctx, mapID, markerID, mapToken, spam)
			if err != nil {
				return err
			}
			printJSON(m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().Int64Var(&markerID, "marker-id", 0, "Marker ID")
	cmd.Flags().StringVar(&mapToken, "map-token", "", "Map edit token")
	cmd.Flags().BoolVar(&spam, "spam", true, "Flag (true) or unflag (false)")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("marker-id")
	return cmd
}

func newMarkerLocationListCmd() *cobra.Command {
	var mapID string
	var markerID int64
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Get a marker's location history",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			locs, err := c.MarkerLocationList(ctx, mapID, markerID)
			if err != nil {
				return err
			}
			printJSON(locs)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().Int64Var(&markerID, "marker-id", 0, "Marker ID")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("marker-id")
	return cmd
}

func newMarkerLocationAddCmd() *cobra.Command {
	var mapID, markerToken string
	var markerID int64
	var lat, lng, zoom, elevation, heading, pitch, roll, speed float64
	cmd := &cobra.Command{
		Use:   "add-location",
		Short: "Append a point to a marker's location history",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := cartes.MarkerLocationPayload{
				Lat:       lat,
				Lng:       lng,
				Zoom:      floatPtr(cmd, "zoom", zoom),
				Elevation: floatPtr(cmd, "elevation", elevation),
				Heading:   floatPtr(cmd, "heading", heading),
				Pitch:     floatPtr(cmd, "pitch", pitch),
				Roll:      floatPtr(cmd, "roll", roll),
				Speed:     floatPtr(cmd, "speed", speed),
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			loc, err := c.MarkerLocationCreate(ctx, mapID, markerID, markerToken, payload)
			if err != nil {
				return err
			}
			printJSON(loc)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapID, "map-id", "", "Map UUID")
	cmd.Flags().Int64Var(&markerID, "marker-id", 0, "Marker ID")
	cmd.Flags().StringVar(&markerToken, "marker-token", "", "Marker edit token")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (-90 to 90)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude (-180 to 180)")
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Zoom level (0-20)")
	cmd.Flags().Float64Var(&elevation, "elevation", 0, "Altitude in meters")
	cmd.Flags().Float64Var(&heading, "heading", 0, "Compass heading (0-359)")
	cmd.Flags().Float64Var(&pitch, "pitch", 0, "Vertical angle (-90 to 90)")
	cmd.Flags().Float64Var(&roll, "roll", 0, "Roll angle (-180 to 180)")
	cmd.Flags().Float64Var(&speed, "speed", 0, "Speed in meters per second")
	_ = cmd.MarkFlagRequired("map-id")
	_ = cmd.MarkFlagRequired("marker-id")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

// --------------------------------------------------------------------
// category
// --------------------------------------------------------------------

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "category", Short: "Category commands"}
	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategorySearchCmd())
	cmd.AddCommand(newCategoryRelatedCmd())
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			cats, err := c.CategoryList(ctx)
			if err != nil {
				return err
			}
			printJSON(cats)
			return nil
		},
	}
}

func newCategorySearchCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search categories by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			cats, err := c.CategorySearch(ctx, query)
			if err != nil {
				return err
			}
			printJSON(cats)
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Search query")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newCategoryRelatedCmd() *cobra.Command {
	var categoryID int64
	cmd := &cobra.Command{
		Use:   "related",
		Short: "Get categories related to a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			cats, err := c.CategoryRelated(ctx, categoryID)
			if err != nil {
				return err
			}
			printJSON(cats)
			return nil
		},
	}
	cmd.Flags().Int64Var(&categoryID, "category-id", 0, "Category ID")
	_ = cmd.MarkFlagRequired("category-id")
	return cmd
}

// --------------------------------------------------------------------
// user / me
// --------------------------------------------------------------------

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "User commands"}
	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserGetCmd())
	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all public users",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			users, err := c.UserList(ctx)
			if err != nil {
				return err
			}
			printJSON(users)
			return nil
		},
	}
}

func newUserGetCmd() *cobra.Command {
	var username string
	var with []string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a public user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			u, err := c.UserGet(ctx, username, with...)
			if err != nil {
				return err
			}
			printJSON(u)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username to look up")
	cmd.Flags().StringSliceVar(&with, "with", nil, "Related data to include (e.g. maps)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newMeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "me", Short: "Authenticated user commands"}
	cmd.AddCommand(newMeGetCmd())
	cmd.AddCommand(newMeUpdateCmd())
	return cmd
}

func newMeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get your own profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			u, err := c.MeGet(ctx)
			if err != nil {
				return err
			}
			printJSON(u)
			return nil
		},
	}
}

func newMeUpdateCmd() *cobra.Command {
	var username string
	var public bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your own profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			payload := cartes.MeUpdatePayload{
				Username: username,
				IsPublic: boolPtr(cmd, "public", public),
			}
			ctx, cancel := callContext(cmd)
			defer cancel()
			u, err := c.MeUpdate(ctx, payload)
			if err != nil {
				return err
			}
			printJSON(u)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().BoolVar(&public, "public", false, "Make the profile public")
	return cmd
}
