package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/affectd/internal/data"
)

// Status entry kinds stored in status_entries.kind.
const (
	kindStat       = "stat"
	kindDamageType = "damage_type"
	kindState      = "state"
)

// TableRepository хранит таблицы аффектов в PostgreSQL.
// Load возвращает тот же data.Tables, что и YAML/TSV загрузчики.
type TableRepository struct {
	db *pgxpool.Pool
}

// NewTableRepository создаёт новый TableRepository.
func NewTableRepository(db *pgxpool.Pool) *TableRepository {
	return &TableRepository{db: db}
}

// Load reads the full table set. Modifiers come back in authoring order.
func (r *TableRepository) Load(ctx context.Context) (*data.Tables, error) {
	var t data.Tables

	if err := r.loadStatus(ctx, &t); err != nil {
		return nil, err
	}
	if err := r.loadAffects(ctx, &t); err != nil {
		return nil, err
	}
	if err := r.loadModifiers(ctx, &t); err != nil {
		return nil, err
	}
	if err := r.loadCrowdControls(ctx, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *TableRepository) loadStatus(ctx context.Context, t *data.Tables) error {
	rows, err := r.db.Query(ctx, `SELECT kind, id, name FROM status_entries ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("querying status entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var row data.StatusRow
		if err := rows.Scan(&kind, &row.ID, &row.Name); err != nil {
			return fmt.Errorf("scanning status entry: %w", err)
		}
		switch kind {
		case kindStat:
			t.Stats = append(t.Stats, row)
		case kindDamageType:
			t.DamageTypes = append(t.DamageTypes, row)
		case kindState:
			t.States = append(t.States, row)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating status entries: %w", err)
	}
	return nil
}

func (r *TableRepository) loadAffects(ctx context.Context, t *data.Tables) error {
	query := `
		SELECT uid, memo, name_key, icon_key, dispel_type, group_id,
		       base_duration, tick_interval, stack_policy, max_stacks, refresh_policy,
		       tags, vfx_uid, vfx_scale, vfx_offset_y, apply_chance
		FROM affects
		ORDER BY uid
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("querying affects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a data.AffectRow
		if err := rows.Scan(
			&a.UID, &a.Memo, &a.NameKey, &a.IconKey, &a.DispelType, &a.GroupID,
			&a.BaseDuration, &a.TickInterval, &a.StackPolicy, &a.MaxStacks, &a.RefreshPolicy,
			&a.Tags, &a.VfxUID, &a.VfxScale, &a.VfxOffsetY, &a.ApplyChance,
		); err != nil {
			return fmt.Errorf("scanning affect row: %w", err)
		}
		t.Affects = append(t.Affects, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating affect rows: %w", err)
	}
	return nil
}

func (r *TableRepository) loadModifiers(ctx context.Context, t *data.Tables) error {
	query := `
		SELECT affect_uid, modifier_id, phase, kind,
		       stat_id, stat_value, stat_value_type, stat_operation,
		       damage_type_id, damage_base_value, scaling_stat_id, scaling_coefficient, can_crit, is_dot,
		       state_id, state_chance, state_duration_override,
		       crowd_control_uid, condition_id
		FROM affect_modifiers
		ORDER BY seq
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("querying affect modifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m data.ModifierRow
		if err := rows.Scan(
			&m.AffectUID, &m.ModifierID, &m.Phase, &m.Kind,
			&m.StatID, &m.StatValue, &m.StatValueType, &m.StatOperation,
			&m.DamageTypeID, &m.DamageBaseValue, &m.ScalingStatID, &m.ScalingCoefficient, &m.CanCrit, &m.IsDot,
			&m.StateID, &m.StateChance, &m.StateDurationOverride,
			&m.CrowdControlUID, &m.ConditionID,
		); err != nil {
			return fmt.Errorf("scanning affect modifier row: %w", err)
		}
		t.Modifiers = append(t.Modifiers, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating affect modifier rows: %w", err)
	}
	return nil
}

func (r *TableRepository) loadCrowdControls(ctx context.Context, t *data.Tables) error {
	rows, err := r.db.Query(ctx, `SELECT uid, kind, duration FROM crowd_controls ORDER BY uid`)
	if err != nil {
		return fmt.Errorf("querying crowd controls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c data.CrowdControlRow
		if err := rows.Scan(&c.UID, &c.Kind, &c.Duration); err != nil {
			return fmt.Errorf("scanning crowd control row: %w", err)
		}
		t.CrowdControls = append(t.CrowdControls, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating crowd control rows: %w", err)
	}
	return nil
}

// Save replaces every stored table with t in one transaction.
// Rows with a non-positive uid are dropped; a repeated uid keeps the last row.
func (r *TableRepository) Save(ctx context.Context, t *data.Tables) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "error", err)
		}
	}()

	for _, table := range []string{"status_entries", "affects", "affect_modifiers", "crowd_controls"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := saveUpserts(ctx, tx, t); err != nil {
		return err
	}
	if err := saveModifiers(ctx, tx, t.Modifiers); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Debug("saved affect tables",
		"affects", len(t.Affects),
		"modifiers", len(t.Modifiers),
		"crowdControls", len(t.CrowdControls))

	return nil
}

// saveUpserts writes the keyed tables through one batch.
func saveUpserts(ctx context.Context, tx pgx.Tx, t *data.Tables) error {
	batch := &pgx.Batch{}

	seq := 0
	queueStatus := func(kind string, rows []data.StatusRow) {
		for _, s := range rows {
			if s.ID == "" {
				continue
			}
			seq++
			batch.Queue(
				`INSERT INTO status_entries (kind, id, name, seq) VALUES ($1, $2, $3, $4)
				 ON CONFLICT (kind, id) DO UPDATE SET name = EXCLUDED.name`,
				kind, s.ID, s.Name, seq,
			)
		}
	}
	queueStatus(kindStat, t.Stats)
	queueStatus(kindDamageType, t.DamageTypes)
	queueStatus(kindState, t.States)

	for _, a := range t.Affects {
		if a.UID <= 0 {
			continue
		}
		batch.Queue(
			`INSERT INTO affects (uid, memo, name_key, icon_key, dispel_type, group_id,
			                      base_duration, tick_interval, stack_policy, max_stacks, refresh_policy,
			                      tags, vfx_uid, vfx_scale, vfx_offset_y, apply_chance)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			 ON CONFLICT (uid) DO UPDATE SET
			     memo = EXCLUDED.memo, name_key = EXCLUDED.name_key, icon_key = EXCLUDED.icon_key,
			     dispel_type = EXCLUDED.dispel_type, group_id = EXCLUDED.group_id,
			     base_duration = EXCLUDED.base_duration, tick_interval = EXCLUDED.tick_interval,
			     stack_policy = EXCLUDED.stack_policy, max_stacks = EXCLUDED.max_stacks,
			     refresh_policy = EXCLUDED.refresh_policy, tags = EXCLUDED.tags,
			     vfx_uid = EXCLUDED.vfx_uid, vfx_scale = EXCLUDED.vfx_scale,
			     vfx_offset_y = EXCLUDED.vfx_offset_y, apply_chance = EXCLUDED.apply_chance`,
			a.UID, a.Memo, a.NameKey, a.IconKey, a.DispelType, a.GroupID,
			a.BaseDuration, a.TickInterval, a.StackPolicy, a.MaxStacks, a.RefreshPolicy,
			a.Tags, a.VfxUID, a.VfxScale, a.VfxOffsetY, a.ApplyChance,
		)
	}

	for _, c := range t.CrowdControls {
		if c.UID <= 0 {
			continue
		}
		batch.Queue(
			`INSERT INTO crowd_controls (uid, kind, duration) VALUES ($1, $2, $3)
			 ON CONFLICT (uid) DO UPDATE SET kind = EXCLUDED.kind, duration = EXCLUDED.duration`,
			c.UID, c.Kind, c.Duration,
		)
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("upserting table row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}
	return nil
}

// saveModifiers вставляет модификаторы через COPY, seq = порядок в таблице.
func saveModifiers(ctx context.Context, tx pgx.Tx, mods []data.ModifierRow) error {
	rows := make([][]any, 0, len(mods))
	for _, m := range mods {
		if m.AffectUID <= 0 {
			continue
		}
		rows = append(rows, []any{
			len(rows) + 1, m.AffectUID, m.ModifierID, m.Phase, m.Kind,
			m.StatID, m.StatValue, m.StatValueType, m.StatOperation,
			m.DamageTypeID, m.DamageBaseValue, m.ScalingStatID, m.ScalingCoefficient, m.CanCrit, m.IsDot,
			m.StateID, m.StateChance, m.StateDurationOverride,
			m.CrowdControlUID, m.ConditionID,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"affect_modifiers"},
		[]string{
			"seq", "affect_uid", "modifier_id", "phase", "kind",
			"stat_id", "stat_value", "stat_value_type", "stat_operation",
			"damage_type_id", "damage_base_value", "scaling_stat_id", "scaling_coefficient", "can_crit", "is_dot",
			"state_id", "state_chance", "state_duration_override",
			"crowd_control_uid", "condition_id",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting affect modifiers: %w", err)
	}
	return nil
}
