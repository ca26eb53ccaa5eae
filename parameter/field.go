package parameter

// Population
const (
	// InitialParticleCount is the population seeded at startup and on reset
	InitialParticleCount = 80
	// BurstSize is the number of particles spawned per click
	BurstSize = 10
	// BurstJitter is the max per-axis offset from the click point (field units)
	BurstJitter = 10.0
	// PopulationFloor is the count at or below which floor removal is suspended
	PopulationFloor = 50
	// RemovalChance is the per-tick probability of removing a resting particle
	RemovalChance = 0.01
)

// Spawn ranges
const (
	// SpawnSpeed bounds each initial velocity component to [-SpawnSpeed, SpawnSpeed)
	SpawnSpeed = 2.0
	// BallisticSpeedX/Y scale spawn velocity when gravity is on
	BallisticSpeedX = 2.0
	BallisticSpeedY = 0.5

	RadiusMin = 3.0
	RadiusMax = 12.0

	SaturationMin  = 70.0
	SaturationSpan = 30.0
	LightnessMin   = 50.0
	LightnessSpan  = 20.0
)

// Kinematics, all per tick
const (
	// Friction is the per-tick velocity retention factor (air drag)
	Friction = 0.98
	// Gravity is the downward acceleration of particles while gravity is on
	Gravity = 0.15
	// Restitution is the fraction of velocity kept (reversed) on a wall hit
	Restitution = 0.7
	// FloorSnapSpeed stops bouncing on the floor below this |vy|
	FloorSnapSpeed = 0.5
	// RestSpeed is the per-axis |v| under which a floor particle counts as resting
	RestSpeed = 0.1
	// RestTolerance is the distance above the floor still counted as resting
	RestTolerance = 1.0
)

// Pointer interaction
const (
	// InfluenceRadius is the distance within which repulsion is graduated
	InfluenceRadius = 150.0
	// InfluenceStrength scales the normalized proximity into impulse
	InfluenceStrength = 2.0
	// InfluenceHueShift is degrees of hue rotation per tick inside InfluenceRadius
	InfluenceHueShift = 2.0
	// ContactRadius triggers the fixed impulse and complementary color
	ContactRadius = 20.0
	// ContactImpulse is the fixed impulse magnitude on contact
	ContactImpulse = 5.0
	// ContactHueShift rotates to the complementary hue; saturation and lightness are set outright
	ContactHueShift   = 180.0
	ContactSaturation = 100.0
	ContactLightness  = 60.0

	// RadiusGrowth is added per tick near the pointer, capped at RadiusGrowthCap × base
	RadiusGrowth    = 0.3
	RadiusGrowthCap = 1.5
	// RadiusDecay is removed per tick away from the pointer, floored at base
	RadiusDecay = 0.2
)

// Viewport mapping
const (
	FieldWidthRatio  = 0.9
	FieldHeightRatio = 0.8
)

// Drawing
const (
	// TrailFadeAlpha is the opacity of the black overlay laid over each frame
	TrailFadeAlpha = 0.1
	// GlowBlur is the shadow blur of each disc (field units)
	GlowBlur = 15.0
	// OutlineWidth/OutlineAlpha describe the white ring around each disc
	OutlineWidth = 2.0
	OutlineAlpha = 0.3
)
